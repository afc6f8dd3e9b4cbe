// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscope/internal/index"
	"github.com/pdiddy/paperscope/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <csv> <query>",
	Short: "Ranked full-text search over titles and abstracts",
	Long: `Search builds an in-memory FTS5 index over the cleaned table's titles
and abstracts and runs the query against it, printing hits ranked by
relevance. Nothing is written to disk.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	t, err := loadCleaned(cmd, args[0])
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = viper.GetInt("index.max_results")
	}

	ix, err := index.New(t, types.IndexConfig{MaxResults: limit})
	if err != nil {
		return err
	}
	defer ix.Close()

	query := strings.Join(args[1:], " ")
	matches, err := ix.Search(context.Background(), query, limit)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-60s  %-30s  %s\n", "Rank", "Title", "Journal", "Year")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 104))
	for i, m := range matches {
		title := m.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		journal := m.Journal
		if len(journal) > 30 {
			journal = journal[:27] + "..."
		}
		year := ""
		if m.Year != types.YearUnknown {
			year = fmt.Sprintf("%d", m.Year)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-60s  %-30s  %s\n", i+1, title, journal, year)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(matches))
	return nil
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
