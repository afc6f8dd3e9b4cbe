// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads a research-paper metadata CSV into an in-memory
// table with a fixed, validated schema.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/paperscope/pkg/types"
)

// Canonical column names. The loader lowercases header names before
// matching, and accepts "source" as an alias for ColSource.
const (
	ColTitle       = "title"
	ColAbstract    = "abstract"
	ColPublishTime = "publish_time"
	ColJournal     = "journal"
	ColSource      = "source_x"
	ColAuthors     = "authors"
	ColDOI         = "doi"
	ColHasFullText = "has_full_text"
)

// requiredColumns must appear in the header; loading fails otherwise.
var requiredColumns = []string{ColTitle, ColPublishTime}

// optionalColumns are treated as entirely null when absent.
var optionalColumns = []string{ColAbstract, ColJournal, ColSource, ColAuthors, ColDOI, ColHasFullText}

// allColumns is the canonical column order used in reports.
var allColumns = append(append([]string{}, requiredColumns...), optionalColumns...)

// Table is an ordered, uniformly-shaped collection of paper records.
// It is mutated in place by the cleaner and read-only afterwards.
type Table struct {
	Papers []types.Paper

	present map[string]bool
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Papers) }

// HasColumn reports whether the named column appeared in the source file.
func (t *Table) HasColumn(name string) bool { return t.present[name] }

// Columns returns the source columns present in the file, in canonical order.
func (t *Table) Columns() []string {
	var cols []string
	for _, c := range allColumns {
		if t.present[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// LoadReport summarizes a load: dimensions and per-column null counts.
type LoadReport struct {
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`

	// NullCounts maps each known column to its null (empty) cell count.
	// Columns absent from the file count every row as null.
	NullCounts map[string]int `json:"null_counts" yaml:"null_counts"`

	// MissingColumns lists optional columns absent from the file.
	MissingColumns []string `json:"missing_columns,omitempty" yaml:"missing_columns,omitempty"`
}

// LoadError reports a fatal load failure: missing file, empty file, or a
// malformed or incomplete header. No partial table accompanies it.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loading %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("loading %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load parses the CSV at path into a Table. The header row is required
// and must include title and publish_time; optional columns absent from
// the file are null for every row.
func Load(path string, cfg types.LoadConfig) (*Table, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, &LoadError{Path: path, Reason: "opening file", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, LoadReport{}, &LoadError{Path: path, Reason: "file is empty"}
	}
	if err != nil {
		return nil, LoadReport{}, &LoadError{Path: path, Reason: "reading header", Err: err}
	}

	idx, err := indexHeader(header)
	if err != nil {
		return nil, LoadReport{}, &LoadError{Path: path, Reason: err.Error()}
	}

	t := &Table{present: make(map[string]bool, len(idx))}
	for col := range idx {
		t.present[col] = true
	}

	nulls := make(map[string]int)
	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, LoadReport{}, &LoadError{
				Path: path, Reason: fmt.Sprintf("malformed row %d", row), Err: err,
			}
		}
		if cfg.MaxRows > 0 && len(t.Papers) >= cfg.MaxRows {
			break
		}

		cell := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		for _, col := range allColumns {
			if cell(col) == "" {
				nulls[col]++
			}
		}

		t.Papers = append(t.Papers, types.Paper{
			Title:       cell(ColTitle),
			Abstract:    cell(ColAbstract),
			PublishRaw:  cell(ColPublishTime),
			Journal:     cell(ColJournal),
			Source:      cell(ColSource),
			Authors:     cell(ColAuthors),
			DOI:         cell(ColDOI),
			HasFullText: truthy(cell(ColHasFullText)),
		})
	}

	report := LoadReport{
		Rows:       len(t.Papers),
		Columns:    len(idx),
		NullCounts: nulls,
	}
	for _, col := range optionalColumns {
		if !t.present[col] {
			report.MissingColumns = append(report.MissingColumns, col)
		}
	}

	return t, report, nil
}

// indexHeader maps canonical column names to field positions. It returns
// an error naming the first missing required column.
func indexHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "source" {
			name = ColSource
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("header missing required column %q", col)
		}
	}
	return idx, nil
}

// truthy parses the has_full_text flag. Unrecognized text is false.
func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y", "t":
		return true
	}
	return false
}

// FormatReport writes a human-readable load report to w.
func FormatReport(rep LoadReport, t *Table, w io.Writer) {
	fmt.Fprintf(w, "rows: %d\ncolumns: %d\n", rep.Rows, rep.Columns)
	fmt.Fprintln(w, "\nnull counts:")
	for _, col := range t.Columns() {
		fmt.Fprintf(w, "  %-14s %d\n", col, rep.NullCounts[col])
	}
	if len(rep.MissingColumns) > 0 {
		fmt.Fprintf(w, "\nabsent columns (all null): %s\n", strings.Join(rep.MissingColumns, ", "))
	}
}
