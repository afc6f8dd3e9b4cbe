// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate computes filtered views and descriptive summaries
// over a cleaned table. Nothing here mutates the table: identical
// filters on the same table always yield identical summaries.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

// View is a filtered sequence of references into the table. No records
// are copied.
type View []*types.Paper

// Select applies the filter to the table and returns the matching view.
// The filter is validated first; on error the caller's previous view
// remains usable.
func Select(t *dataset.Table, f types.Filter) (View, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	keyword := strings.ToLower(f.Keyword)
	var view View
	for i := range t.Papers {
		p := &t.Papers[i]
		if !matches(p, f, keyword) {
			continue
		}
		view = append(view, p)
	}
	return view, nil
}

// matches evaluates the filter conjunction for one record. Year bounds
// never match records with an unknown publication year.
func matches(p *types.Paper, f types.Filter, keyword string) bool {
	if f.YearMin != 0 || f.YearMax != 0 {
		if p.PublishYear == types.YearUnknown {
			return false
		}
		if f.YearMin != 0 && p.PublishYear < f.YearMin {
			return false
		}
		if f.YearMax != 0 && p.PublishYear > f.YearMax {
			return false
		}
	}
	if f.Journal != "" && p.Journal != f.Journal {
		return false
	}
	if f.Source != "" && p.Source != f.Source {
		return false
	}
	if keyword != "" {
		if !strings.Contains(strings.ToLower(p.Title), keyword) &&
			!strings.Contains(strings.ToLower(p.Abstract), keyword) {
			return false
		}
	}
	return true
}

// Stats holds descriptive statistics over a derived integer column,
// computed over records whose underlying source value was non-null.
type Stats struct {
	Min   int     `json:"min" yaml:"min"`
	Max   int     `json:"max" yaml:"max"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Count int     `json:"count" yaml:"count"`
}

// YearCount is one year's publication count.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// MonthCount is one calendar month's publication count.
type MonthCount struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Count int `json:"count" yaml:"count"`
}

// GroupCount is one group key's record count.
type GroupCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Summary holds every aggregate the reporting layer renders. It is a
// pure function of the view and topK.
type Summary struct {
	Count int `json:"count" yaml:"count"`

	// ByYear counts publications per known year, ascending. Records with
	// an unknown year are reported separately in UnknownYears.
	ByYear       []YearCount `json:"by_year" yaml:"by_year"`
	UnknownYears int         `json:"unknown_years" yaml:"unknown_years"`

	// Monthly counts publications per (year, month), chronological.
	Monthly []MonthCount `json:"monthly" yaml:"monthly"`

	// TopJournals holds the K most frequent journals, count descending,
	// ties broken by first-encountered order.
	TopJournals []GroupCount `json:"top_journals" yaml:"top_journals"`

	// BySource counts publications per source, count descending, ties by
	// first-encountered order.
	BySource []GroupCount `json:"by_source" yaml:"by_source"`

	AbstractLength Stats `json:"abstract_length" yaml:"abstract_length"`
	AuthorCount    Stats `json:"author_count" yaml:"author_count"`

	// FullTextRatio is count(has_full_text)/Count, in [0,1], 0 when the
	// view is empty.
	FullTextRatio float64 `json:"full_text_ratio" yaml:"full_text_ratio"`

	// AbstractCompleteness is the share of records with a real (source)
	// abstract, in [0,1].
	AbstractCompleteness float64 `json:"abstract_completeness" yaml:"abstract_completeness"`

	UniqueJournals int `json:"unique_journals" yaml:"unique_journals"`

	// MostActiveYear is the known year with the highest count,
	// YearUnknown when no record has a known year.
	MostActiveYear int `json:"most_active_year" yaml:"most_active_year"`

	// DateMin and DateMax bound the known publication dates. Zero when
	// no record has a known date.
	DateMin time.Time `json:"date_min" yaml:"date_min"`
	DateMax time.Time `json:"date_max" yaml:"date_max"`
}

// Summarize computes the summary for a view. topK <= 0 defaults to 10.
func Summarize(view View, topK int) Summary {
	if topK <= 0 {
		topK = 10
	}

	s := Summary{Count: len(view)}

	years := make(map[int]int)
	months := make(map[[2]int]int)
	journals := newGroupCounter()
	sources := newGroupCounter()
	uniqueJournals := make(map[string]bool)

	fullText := 0
	withAbstract := 0

	for _, p := range view {
		if p.PublishYear == types.YearUnknown {
			s.UnknownYears++
		} else {
			years[p.PublishYear]++
			months[[2]int{p.PublishYear, p.PublishMonth}]++
			if s.DateMin.IsZero() || p.PublishTime.Before(s.DateMin) {
				s.DateMin = p.PublishTime
			}
			if p.PublishTime.After(s.DateMax) {
				s.DateMax = p.PublishTime
			}
		}
		if p.Journal != "" {
			journals.add(p.Journal)
			uniqueJournals[p.Journal] = true
		}
		if p.Source != "" {
			sources.add(p.Source)
		}
		if p.HasFullText {
			fullText++
		}
		if p.AbstractLength > 0 {
			withAbstract++
			s.AbstractLength.observe(p.AbstractLength)
		}
		if p.AuthorCount > 0 {
			s.AuthorCount.observe(p.AuthorCount)
		}
	}

	for year, count := range years {
		s.ByYear = append(s.ByYear, YearCount{Year: year, Count: count})
	}
	sort.Slice(s.ByYear, func(i, j int) bool { return s.ByYear[i].Year < s.ByYear[j].Year })

	for ym, count := range months {
		s.Monthly = append(s.Monthly, MonthCount{Year: ym[0], Month: ym[1], Count: count})
	}
	sort.Slice(s.Monthly, func(i, j int) bool {
		if s.Monthly[i].Year != s.Monthly[j].Year {
			return s.Monthly[i].Year < s.Monthly[j].Year
		}
		return s.Monthly[i].Month < s.Monthly[j].Month
	})

	s.TopJournals = journals.top(topK)
	s.BySource = sources.top(len(sources.counts))
	s.UniqueJournals = len(uniqueJournals)

	for _, yc := range s.ByYear {
		if s.MostActiveYear == types.YearUnknown || yc.Count > yearCount(s.ByYear, s.MostActiveYear) {
			s.MostActiveYear = yc.Year
		}
	}

	if s.Count > 0 {
		s.FullTextRatio = float64(fullText) / float64(s.Count)
		s.AbstractCompleteness = float64(withAbstract) / float64(s.Count)
	}

	s.AbstractLength.finish()
	s.AuthorCount.finish()
	return s
}

func yearCount(byYear []YearCount, year int) int {
	for _, yc := range byYear {
		if yc.Year == year {
			return yc.Count
		}
	}
	return 0
}

// observe accumulates one value; Mean temporarily holds the running sum.
func (st *Stats) observe(v int) {
	if st.Count == 0 || v < st.Min {
		st.Min = v
	}
	if v > st.Max {
		st.Max = v
	}
	st.Mean += float64(v)
	st.Count++
}

func (st *Stats) finish() {
	if st.Count > 0 {
		st.Mean /= float64(st.Count)
	}
}

// groupCounter counts group keys while remembering first-encountered
// order, so top-K ties break deterministically.
type groupCounter struct {
	counts map[string]int
	order  []string
}

func newGroupCounter() *groupCounter {
	return &groupCounter{counts: make(map[string]int)}
}

func (g *groupCounter) add(key string) {
	if g.counts[key] == 0 {
		g.order = append(g.order, key)
	}
	g.counts[key]++
}

// top returns up to k groups, count descending, ties by first seen.
func (g *groupCounter) top(k int) []GroupCount {
	groups := make([]GroupCount, 0, len(g.order))
	for _, key := range g.order {
		groups = append(groups, GroupCount{Key: key, Count: g.counts[key]})
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	if k < len(groups) {
		groups = groups[:k]
	}
	return groups
}
