// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures for the paperscope
// pipeline: the Paper record, filter predicates, and stage configuration.
package types

import "time"

// YearUnknown is the sentinel publication year for papers whose
// publish_time could not be parsed.
const YearUnknown = 0

// Paper holds the metadata row for one research paper, as loaded from
// the CSV plus the columns derived during cleaning.
type Paper struct {
	// Title is the paper title. Required at load time.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, possibly a fill default after cleaning.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PublishRaw is the publish_time text as it appeared in the source file.
	PublishRaw string `json:"publish_raw,omitempty" yaml:"publish_raw,omitempty"`

	// PublishTime is the parsed publication date. Zero when unparseable.
	PublishTime time.Time `json:"publish_time" yaml:"publish_time"`

	// Journal is the publishing journal.
	Journal string `json:"journal" yaml:"journal"`

	// Source identifies the collection the record came from (e.g. "PMC").
	Source string `json:"source" yaml:"source"`

	// Authors is the delimited author list as read from the file.
	Authors string `json:"authors" yaml:"authors"`

	// DOI is the digital object identifier.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// HasFullText reports whether full text is available for the paper.
	HasFullText bool `json:"has_full_text" yaml:"has_full_text"`

	// PublishYear and PublishMonth are derived from PublishTime.
	// Both are YearUnknown/0 when the date is unknown.
	PublishYear  int `json:"publish_year" yaml:"publish_year"`
	PublishMonth int `json:"publish_month" yaml:"publish_month"`

	// AbstractLength is the character count of the original abstract,
	// 0 when the source field was null. Fill defaults do not count.
	AbstractLength int `json:"abstract_length" yaml:"abstract_length"`

	// AuthorCount is derived by splitting Authors. 0 when null or empty.
	AuthorCount int `json:"author_count" yaml:"author_count"`
}

// DateKnown reports whether the paper has a parsed publication date.
func (p Paper) DateKnown() bool {
	return !p.PublishTime.IsZero()
}
