// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render draws text bar charts and histograms from summary
// aggregates. It consumes summaries only and never touches the table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/paperscope/internal/aggregate"
)

// Bar is one labeled value in a chart.
type Bar struct {
	Label string
	Value int
}

// BarChart writes a horizontal bar chart to w, scaling bars to maxWidth
// runes. Zero-value bars render an empty track so the label stays visible.
func BarChart(w io.Writer, title string, bars []Bar, maxWidth int) {
	if len(bars) == 0 {
		return
	}
	if maxWidth <= 0 {
		maxWidth = 40
	}

	peak := 0
	labelWidth := 0
	for _, b := range bars {
		if b.Value > peak {
			peak = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	fmt.Fprintln(w, title)
	for _, b := range bars {
		n := 0
		if peak > 0 {
			n = b.Value * maxWidth / peak
		}
		if b.Value > 0 && n == 0 {
			n = 1
		}
		fmt.Fprintf(w, "  %-*s  %s %d\n", labelWidth, b.Label, strings.Repeat("█", n), b.Value)
	}
}

// YearBars converts the by-year aggregate into chart bars, appending an
// "unknown" bar when unparsed dates exist.
func YearBars(s aggregate.Summary) []Bar {
	bars := make([]Bar, 0, len(s.ByYear)+1)
	for _, yc := range s.ByYear {
		bars = append(bars, Bar{Label: strconv.Itoa(yc.Year), Value: yc.Count})
	}
	if s.UnknownYears > 0 {
		bars = append(bars, Bar{Label: "unknown", Value: s.UnknownYears})
	}
	return bars
}

// GroupBars converts a grouped count into chart bars.
func GroupBars(groups []aggregate.GroupCount, labelMax int) []Bar {
	bars := make([]Bar, 0, len(groups))
	for _, g := range groups {
		label := g.Key
		if labelMax > 0 && len(label) > labelMax {
			label = label[:labelMax-3] + "..."
		}
		bars = append(bars, Bar{Label: label, Value: g.Count})
	}
	return bars
}

// Histogram bins integer values into equal-width bins and returns one
// bar per bin labeled "lo-hi". bins <= 0 defaults to 20; values outside
// no bin cannot occur since the range covers min..max.
func Histogram(values []int, bins int) []Bar {
	if len(values) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = 20
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	width := (hi - lo + bins) / bins
	if width < 1 {
		width = 1
	}

	counts := make([]int, bins)
	for _, v := range values {
		b := (v - lo) / width
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	// Trailing empty bins carry no information.
	last := 0
	for i, c := range counts {
		if c > 0 {
			last = i
		}
	}

	bars := make([]Bar, 0, last+1)
	for i := 0; i <= last; i++ {
		binLo := lo + i*width
		binHi := binLo + width - 1
		label := fmt.Sprintf("%d-%d", binLo, binHi)
		if width == 1 {
			label = strconv.Itoa(binLo)
		}
		bars = append(bars, Bar{Label: label, Value: counts[i]})
	}
	return bars
}
