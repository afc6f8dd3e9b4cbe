// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/clean"
	"github.com/pdiddy/paperscope/internal/dataset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <csv>",
	Short: "Load a metadata CSV and print the load and cleaning reports",
	Long: `Inspect parses the CSV, reports row and column counts with per-column
null counts, then runs the cleaner and reports rows dropped, values filled
per column, and unparseable dates. The title and publish_time columns are
required; other columns are optional and treated as null when absent.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	t, loadRep, err := dataset.Load(args[0], loadConfig(cmd))
	if err != nil {
		return err
	}

	cleanCfg, err := cleanConfig(cmd)
	if err != nil {
		return err
	}
	cleanRep, err := clean.Clean(t, cleanCfg)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Load  dataset.LoadReport `json:"load"`
			Clean clean.Report       `json:"clean"`
		}{loadRep, cleanRep})
	}

	dataset.FormatReport(loadRep, t, os.Stdout)
	fmt.Fprintln(os.Stdout, "\ncleaning:")
	clean.FormatReport(cleanRep, os.Stdout)
	return nil
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output reports as JSON")

	rootCmd.AddCommand(inspectCmd)
}
