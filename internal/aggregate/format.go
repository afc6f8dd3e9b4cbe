// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

const dateFmt = "2006-01-02"

// FormatTable writes the summary as a human-readable report to w.
func FormatTable(s Summary, w io.Writer) {
	fmt.Fprintf(w, "papers:            %d\n", s.Count)
	fmt.Fprintf(w, "unique journals:   %d\n", s.UniqueJournals)
	fmt.Fprintf(w, "full text:         %.1f%%\n", s.FullTextRatio*100)
	fmt.Fprintf(w, "with abstract:     %.1f%%\n", s.AbstractCompleteness*100)
	if s.MostActiveYear != 0 {
		fmt.Fprintf(w, "most active year:  %d\n", s.MostActiveYear)
	}
	if !s.DateMin.IsZero() {
		fmt.Fprintf(w, "date range:        %s to %s\n",
			s.DateMin.Format(dateFmt), s.DateMax.Format(dateFmt))
	}

	fmt.Fprintf(w, "\nabstract length:   %s\n", formatStats(s.AbstractLength, "chars"))
	fmt.Fprintf(w, "authors per paper: %s\n", formatStats(s.AuthorCount, "authors"))

	if len(s.ByYear) > 0 {
		fmt.Fprintln(w, "\npublications by year:")
		for _, yc := range s.ByYear {
			fmt.Fprintf(w, "  %d  %d\n", yc.Year, yc.Count)
		}
		if s.UnknownYears > 0 {
			fmt.Fprintf(w, "  unknown  %d\n", s.UnknownYears)
		}
	}

	if len(s.TopJournals) > 0 {
		fmt.Fprintln(w, "\ntop journals:")
		for i, g := range s.TopJournals {
			fmt.Fprintf(w, "  %-4d %-50s %d\n", i+1, truncate(g.Key, 50), g.Count)
		}
	}

	if len(s.BySource) > 0 {
		fmt.Fprintln(w, "\nby source:")
		for _, g := range s.BySource {
			fmt.Fprintf(w, "  %-20s %d\n", truncate(g.Key, 20), g.Count)
		}
	}
}

func formatStats(st Stats, unit string) string {
	if st.Count == 0 {
		return "no data"
	}
	return fmt.Sprintf("min %d, max %d, mean %.1f %s (%d non-null)",
		st.Min, st.Max, st.Mean, unit, st.Count)
}

// FormatJSON writes the summary as indented JSON to w.
func FormatJSON(s Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// FormatYAML writes the summary as YAML to w.
func FormatYAML(s Summary, w io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
