// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean fills or drops null values per an explicit per-column
// policy table, parses publication dates, and derives the computed
// columns (publish_year, publish_month, abstract_length, author_count).
package clean

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

// defaultDateFormats is the ordered layout list tried against
// publish_time text. The first layout that parses wins.
var defaultDateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006 Jan 2",
	"2006-01",
	"2006",
}

// DefaultPolicies mirrors the dashboard's original imputation rules.
func DefaultPolicies() map[string]types.ColumnPolicy {
	return map[string]types.ColumnPolicy{
		dataset.ColTitle:       {Action: types.PolicyDrop},
		dataset.ColAbstract:    {Action: types.PolicyFill, Value: "No abstract available"},
		dataset.ColJournal:     {Action: types.PolicyFill, Value: "Unknown Journal"},
		dataset.ColDOI:         {Action: types.PolicyFill, Value: "No DOI available"},
		dataset.ColSource:      {Action: types.PolicyFill, Value: "unknown"},
		dataset.ColPublishTime: {Action: types.PolicySentinel},
		dataset.ColAuthors:     {Action: types.PolicySentinel},
	}
}

// Report summarizes a cleaning run.
type Report struct {
	// RowsDropped counts rows removed by drop policies.
	RowsDropped int `json:"rows_dropped" yaml:"rows_dropped"`

	// Filled counts values imputed, per column.
	Filled map[string]int `json:"filled" yaml:"filled"`

	// DatesUnparsed counts publish_time values no layout could parse.
	// These rows keep the unknown-year sentinel; nothing is fabricated.
	DatesUnparsed int `json:"dates_unparsed" yaml:"dates_unparsed"`
}

// Clean applies the configured policies to t in place, parses dates, and
// populates the derived columns. After Clean returns, the table is
// treated as read-only by the aggregation layer.
func Clean(t *dataset.Table, cfg types.CleanConfig) (Report, error) {
	policies := DefaultPolicies()
	for col, p := range cfg.Policies {
		if _, known := policies[col]; !known {
			return Report{}, fmt.Errorf("cleaning policy for unknown column %q", col)
		}
		policies[col] = p
	}

	formats := cfg.DateFormats
	if len(formats) == 0 {
		formats = defaultDateFormats
	}

	report := Report{Filled: make(map[string]int)}

	// Drop passes run first so fill counts reflect surviving rows only.
	for col, p := range policies {
		if p.Action == types.PolicyDrop {
			report.RowsDropped += dropNullRows(t, col)
		}
	}

	modes := map[string]string{}
	for col, p := range policies {
		if p.Action == types.PolicyFillMode {
			modes[col] = columnMode(t, col)
		}
	}

	cols := sortedColumns(policies)
	for i := range t.Papers {
		p := &t.Papers[i]
		rawAbstract := p.Abstract

		for _, col := range cols {
			pol := policies[col]
			switch pol.Action {
			case types.PolicyFill, types.PolicyFillMode:
				field := columnField(p, col)
				if field == nil || *field != "" {
					continue
				}
				value := pol.Value
				if pol.Action == types.PolicyFillMode {
					value = modes[col]
				}
				if value == "" {
					continue
				}
				*field = value
				report.Filled[col]++
			}
		}

		if p.PublishRaw != "" {
			if ts, ok := parseDate(p.PublishRaw, formats); ok {
				p.PublishTime = ts
			} else {
				report.DatesUnparsed++
			}
		}
		derive(p)
		// Length of the source abstract, before any fill: 0 when null,
		// so imputed text never inflates the statistics.
		p.AbstractLength = len(rawAbstract)
	}

	return report, nil
}

// derive computes publish_year, publish_month, and author_count for one
// record. The raw authors field is used, so fill defaults never inflate
// the count.
func derive(p *types.Paper) {
	if p.DateKnown() {
		p.PublishYear = p.PublishTime.Year()
		p.PublishMonth = int(p.PublishTime.Month())
	} else {
		p.PublishYear = types.YearUnknown
		p.PublishMonth = 0
	}
	p.AuthorCount = countAuthors(p.Authors)
}

// parseDate tries each layout in order and returns the first success.
func parseDate(s string, formats []string) (time.Time, bool) {
	for _, layout := range formats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// countAuthors splits the authors field on ";" then "," and counts the
// non-empty parts. A null or empty field is zero authors, not an error.
func countAuthors(s string) int {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	n := 0
	for _, part := range strings.Split(s, sep) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// dropNullRows removes rows whose named column is null and returns the
// number removed.
func dropNullRows(t *dataset.Table, col string) int {
	kept := t.Papers[:0]
	dropped := 0
	for _, p := range t.Papers {
		field := columnField(&p, col)
		if field != nil && *field == "" {
			dropped++
			continue
		}
		kept = append(kept, p)
	}
	t.Papers = kept
	return dropped
}

// columnMode returns the most frequent non-null value in the column,
// ties broken by first-encountered order. Empty when the column has no
// non-null values.
func columnMode(t *dataset.Table, col string) string {
	counts := make(map[string]int)
	var order []string
	for i := range t.Papers {
		field := columnField(&t.Papers[i], col)
		if field == nil || *field == "" {
			continue
		}
		if counts[*field] == 0 {
			order = append(order, *field)
		}
		counts[*field]++
	}
	best := ""
	for _, v := range order {
		if best == "" || counts[v] > counts[best] {
			best = v
		}
	}
	return best
}

// columnField maps a policy column name to the record field it cleans.
// publish_time policies act on the raw text; parsing happens afterwards.
func columnField(p *types.Paper, col string) *string {
	switch col {
	case dataset.ColTitle:
		return &p.Title
	case dataset.ColAbstract:
		return &p.Abstract
	case dataset.ColJournal:
		return &p.Journal
	case dataset.ColSource:
		return &p.Source
	case dataset.ColAuthors:
		return &p.Authors
	case dataset.ColDOI:
		return &p.DOI
	case dataset.ColPublishTime:
		return &p.PublishRaw
	}
	return nil
}

// sortedColumns returns policy columns in deterministic order so fill
// counts and reports are stable across runs.
func sortedColumns(policies map[string]types.ColumnPolicy) []string {
	cols := make([]string, 0, len(policies))
	for col := range policies {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// FormatReport writes a human-readable cleaning report to w.
func FormatReport(rep Report, w io.Writer) {
	fmt.Fprintf(w, "rows dropped:   %d\n", rep.RowsDropped)
	fmt.Fprintf(w, "dates unparsed: %d\n", rep.DatesUnparsed)
	if len(rep.Filled) == 0 {
		return
	}
	fmt.Fprintln(w, "values filled:")
	cols := make([]string, 0, len(rep.Filled))
	for col := range rep.Filled {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		fmt.Fprintf(w, "  %-14s %d\n", col, rep.Filled[col])
	}
}
