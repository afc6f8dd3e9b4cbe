// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PolicyAction selects how the cleaner handles null values in a column.
type PolicyAction string

const (
	// PolicyDrop removes rows where the column is null.
	PolicyDrop PolicyAction = "drop"

	// PolicyFill replaces nulls with a fixed default value.
	PolicyFill PolicyAction = "fill"

	// PolicyFillMode replaces nulls with the column's most frequent
	// non-null value, ties broken by first-encountered order.
	PolicyFillMode PolicyAction = "fill-mode"

	// PolicySentinel leaves the value null; derived columns and reports
	// use an explicit "unknown" marker instead.
	PolicySentinel PolicyAction = "sentinel"
)

// ColumnPolicy pairs a policy action with its fill value where applicable.
type ColumnPolicy struct {
	Action PolicyAction `json:"action" yaml:"action"`

	// Value is the fixed default used by PolicyFill.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// LoadConfig holds settings for the loading stage.
type LoadConfig struct {
	// MaxRows caps the number of data rows read (0 = unlimited).
	MaxRows int `json:"max_rows" yaml:"max_rows"`
}

// CleanConfig holds settings for the cleaning stage.
type CleanConfig struct {
	// Policies maps a source column name to its null-handling policy.
	// Columns without an entry keep the built-in default policy.
	Policies map[string]ColumnPolicy `json:"policies" yaml:"policies"`

	// DateFormats is the ordered list of layouts tried when parsing
	// publish_time. Empty uses the built-in list.
	DateFormats []string `json:"date_formats" yaml:"date_formats"`
}

// AggregateConfig holds settings for the aggregation stage.
type AggregateConfig struct {
	// TopK is the number of journals reported in the top-journals group
	// (default 10).
	TopK int `json:"top_k" yaml:"top_k"`

	// HistogramBins is the bin count for author/abstract histograms
	// (default 20).
	HistogramBins int `json:"histogram_bins" yaml:"histogram_bins"`
}

// IndexConfig holds settings for the full-text search index.
type IndexConfig struct {
	// MaxResults is the default maximum number of search hits (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all stage configurations.
type Config struct {
	Load      LoadConfig      `json:"load" yaml:"load"`
	Clean     CleanConfig     `json:"clean" yaml:"clean"`
	Aggregate AggregateConfig `json:"aggregate" yaml:"aggregate"`
	Index     IndexConfig     `json:"index" yaml:"index"`
}
