// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Filter is a conjunction of optional constraints narrowing which papers
// an aggregation considers. The zero value matches every paper.
type Filter struct {
	// YearMin and YearMax bound the publication year, inclusive.
	// Zero means unbounded on that side.
	YearMin int `json:"year_min,omitempty" yaml:"year_min,omitempty"`
	YearMax int `json:"year_max,omitempty" yaml:"year_max,omitempty"`

	// Journal requires an exact journal match.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Source requires an exact source match.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Keyword requires a case-insensitive substring match on title or abstract.
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	return f.YearMin == 0 && f.YearMax == 0 &&
		f.Journal == "" && f.Source == "" && f.Keyword == ""
}

// Validate rejects filters that can never match. A rejected filter leaves
// any previously built view untouched.
func (f Filter) Validate() error {
	if f.YearMin < 0 || f.YearMax < 0 {
		return &FilterError{Field: "year", Reason: "year bounds must be non-negative"}
	}
	if f.YearMin != 0 && f.YearMax != 0 && f.YearMin > f.YearMax {
		return &FilterError{
			Field:  "year",
			Reason: fmt.Sprintf("year_min %d exceeds year_max %d", f.YearMin, f.YearMax),
		}
	}
	return nil
}

// FilterError reports an invalid filter constraint.
type FilterError struct {
	Field  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid filter %s: %s", e.Field, e.Reason)
}
