// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscope/internal/aggregate"
	"github.com/pdiddy/paperscope/internal/render"
	"github.com/pdiddy/paperscope/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report <csv>",
	Short: "Aggregate a cleaned table into summaries and charts",
	Long: `Report loads and cleans the CSV, applies the filter flags, and prints
summary statistics: counts by year, journal, and source, abstract-length and
author-count statistics, and the full-text availability ratio.

Filters are a conjunction; omitted flags leave that dimension unconstrained.
With --chart, a text bar chart replaces the summary tables.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	t, err := loadCleaned(cmd, args[0])
	if err != nil {
		return err
	}

	view, err := aggregate.Select(t, filter)
	if err != nil {
		return err
	}
	summary := aggregate.Summarize(view, topK(cmd))

	chart, _ := cmd.Flags().GetString("chart")
	if chart != "" {
		return renderChart(chart, view, summary, cmd)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		aggregate.FormatTable(summary, os.Stdout)
		return nil
	case "json":
		return aggregate.FormatJSON(summary, os.Stdout)
	case "yaml":
		return aggregate.FormatYAML(summary, os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

// renderChart draws one of the dashboard charts as a text bar chart.
func renderChart(name string, view aggregate.View, s aggregate.Summary, cmd *cobra.Command) error {
	width, _ := cmd.Flags().GetInt("width")
	bins := histogramBins(cmd)

	switch name {
	case "years":
		render.BarChart(os.Stdout, "publications by year", render.YearBars(s), width)
	case "journals":
		render.BarChart(os.Stdout, "top journals", render.GroupBars(s.TopJournals, 40), width)
	case "sources":
		render.BarChart(os.Stdout, "publications by source", render.GroupBars(s.BySource, 40), width)
	case "authors":
		values := make([]int, 0, len(view))
		for _, p := range view {
			if p.AuthorCount > 0 {
				values = append(values, p.AuthorCount)
			}
		}
		render.BarChart(os.Stdout, "authors per paper", render.Histogram(values, bins), width)
	case "lengths":
		values := make([]int, 0, len(view))
		for _, p := range view {
			if p.AbstractLength > 0 {
				values = append(values, p.AbstractLength)
			}
		}
		render.BarChart(os.Stdout, "abstract length (characters)", render.Histogram(values, bins), width)
	default:
		return fmt.Errorf("unsupported chart %q: use years, journals, sources, authors, or lengths", name)
	}
	return nil
}

// filterFromFlags builds and validates the filter. Cobra rejects
// non-integer year flags before we get here; Validate catches inverted
// ranges.
func filterFromFlags(cmd *cobra.Command) (types.Filter, error) {
	yearMin, _ := cmd.Flags().GetInt("year-min")
	yearMax, _ := cmd.Flags().GetInt("year-max")
	journal, _ := cmd.Flags().GetString("journal")
	source, _ := cmd.Flags().GetString("source")
	keyword, _ := cmd.Flags().GetString("keyword")

	f := types.Filter{
		YearMin: yearMin,
		YearMax: yearMax,
		Journal: journal,
		Source:  source,
		Keyword: keyword,
	}
	if err := f.Validate(); err != nil {
		return types.Filter{}, err
	}
	return f, nil
}

func topK(cmd *cobra.Command) int {
	k, _ := cmd.Flags().GetInt("top-k")
	if k == 0 {
		k = viper.GetInt("aggregate.top_k")
	}
	return k
}

func histogramBins(cmd *cobra.Command) int {
	bins, _ := cmd.Flags().GetInt("bins")
	if bins == 0 {
		bins = viper.GetInt("aggregate.histogram_bins")
	}
	return bins
}

func init() {
	reportCmd.Flags().Int("year-min", 0, "earliest publication year, inclusive (0 = unbounded)")
	reportCmd.Flags().Int("year-max", 0, "latest publication year, inclusive (0 = unbounded)")
	reportCmd.Flags().String("journal", "", "exact journal match")
	reportCmd.Flags().String("source", "", "exact source match")
	reportCmd.Flags().String("keyword", "", "case-insensitive substring match on title or abstract")
	reportCmd.Flags().Int("top-k", 0, "journals shown in the top-journals group (default 10)")
	reportCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	reportCmd.Flags().String("chart", "", "chart instead of tables: years, journals, sources, authors, lengths")
	reportCmd.Flags().Int("width", 40, "maximum chart bar width")
	reportCmd.Flags().Int("bins", 0, "histogram bin count (default 20)")

	rootCmd.AddCommand(reportCmd)
}
