// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/paperscope/internal/aggregate"
)

func TestBarChartScaling(t *testing.T) {
	var buf bytes.Buffer
	BarChart(&buf, "counts", []Bar{
		{Label: "2020", Value: 10},
		{Label: "2021", Value: 5},
		{Label: "2022", Value: 0},
	}, 20)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "counts" {
		t.Errorf("title line = %q", lines[0])
	}
	if got := strings.Count(lines[1], "█"); got != 20 {
		t.Errorf("peak bar width = %d, want 20", got)
	}
	if got := strings.Count(lines[2], "█"); got != 10 {
		t.Errorf("half bar width = %d, want 10", got)
	}
	if got := strings.Count(lines[3], "█"); got != 0 {
		t.Errorf("zero bar width = %d, want 0", got)
	}
	if !strings.Contains(lines[3], "2022") {
		t.Errorf("zero bar keeps its label: %q", lines[3])
	}
}

func TestBarChartSmallValueStillVisible(t *testing.T) {
	var buf bytes.Buffer
	BarChart(&buf, "t", []Bar{{Label: "big", Value: 1000}, {Label: "tiny", Value: 1}}, 10)

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "tiny") && !strings.Contains(line, "█") {
			t.Error("non-zero bar rendered empty")
		}
	}
}

func TestBarChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	BarChart(&buf, "t", nil, 20)
	if buf.Len() != 0 {
		t.Errorf("empty chart wrote %q", buf.String())
	}
}

func TestYearBars(t *testing.T) {
	s := aggregate.Summary{
		ByYear:       []aggregate.YearCount{{Year: 2020, Count: 3}, {Year: 2021, Count: 1}},
		UnknownYears: 2,
	}
	want := []Bar{{"2020", 3}, {"2021", 1}, {"unknown", 2}}
	if got := YearBars(s); !reflect.DeepEqual(got, want) {
		t.Errorf("YearBars = %v, want %v", got, want)
	}
}

func TestHistogram(t *testing.T) {
	bars := Histogram([]int{1, 1, 2, 3, 3, 3}, 3)
	want := []Bar{{"1", 2}, {"2", 1}, {"3", 3}}
	if !reflect.DeepEqual(bars, want) {
		t.Errorf("Histogram = %v, want %v", bars, want)
	}
}

func TestHistogramWideRange(t *testing.T) {
	values := []int{0, 5, 10, 15, 20}
	bars := Histogram(values, 2)

	total := 0
	for _, b := range bars {
		total += b.Value
	}
	if total != len(values) {
		t.Errorf("histogram loses values: counted %d of %d", total, len(values))
	}
}

func TestHistogramEmpty(t *testing.T) {
	if bars := Histogram(nil, 10); bars != nil {
		t.Errorf("Histogram(nil) = %v, want nil", bars)
	}
}
