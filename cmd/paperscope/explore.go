// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/explore"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <csv>",
	Short: "Interactively filter and summarize the table",
	Long: `Explore opens a terminal UI over the cleaned table: edit the year
range, journal, source, and keyword filters and watch the summary and year
chart update. The table is read-only once cleaned; each session recomputes
its own view.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	t, err := loadCleaned(cmd, args[0])
	if err != nil {
		return err
	}
	return explore.Run(t, topK(cmd))
}

func init() {
	exploreCmd.Flags().Int("top-k", 0, "journals shown in the summary pane (default 10)")

	rootCmd.AddCommand(exploreCmd)
}
