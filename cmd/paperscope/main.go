// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscope CLI: loading,
// cleaning, aggregating, searching, and interactively exploring a
// research-paper metadata CSV.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscope/internal/clean"
	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperscope CLI.
var rootCmd = &cobra.Command{
	Use:   "paperscope",
	Short: "Explore and report on research-paper metadata",
	Long: `paperscope loads a CSV of research-paper metadata, cleans and imputes
missing fields, derives publication-year, author-count, and abstract-length
columns, and reports aggregate statistics.

Use inspect for a load report, report for filtered summaries and charts,
search for ranked full-text search, and explore for the interactive UI.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscope.yaml or ~/.config/paperscope/config.yaml)")
	rootCmd.PersistentFlags().String("policies", "", "YAML file with per-column cleaning policies")
	rootCmd.PersistentFlags().Int("max-rows", 0, "cap on data rows read (0 = unlimited)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscope"))
		}
	}

	viper.SetEnvPrefix("PAPERSCOPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig builds the load-stage config from flags and the config file.
func loadConfig(cmd *cobra.Command) types.LoadConfig {
	maxRows, _ := cmd.Flags().GetInt("max-rows")
	if maxRows == 0 {
		maxRows = viper.GetInt("load.max_rows")
	}
	return types.LoadConfig{MaxRows: maxRows}
}

// cleanConfig builds the clean-stage config. Policies come from the
// --policies YAML file when given, else from the config file's
// clean.policies_file, else the built-in defaults apply.
func cleanConfig(cmd *cobra.Command) (types.CleanConfig, error) {
	cfg := types.CleanConfig{
		DateFormats: viper.GetStringSlice("clean.date_formats"),
	}

	path, _ := cmd.Flags().GetString("policies")
	if path == "" {
		path = viper.GetString("clean.policies_file")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading policies file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg.Policies); err != nil {
		return cfg, fmt.Errorf("parsing policies file %s: %w", path, err)
	}
	return cfg, nil
}

// loadCleaned runs the load and clean stages for a command that needs a
// ready table. The cleaning report goes to stderr so stdout stays
// machine-readable.
func loadCleaned(cmd *cobra.Command, path string) (*dataset.Table, error) {
	t, _, err := dataset.Load(path, loadConfig(cmd))
	if err != nil {
		return nil, err
	}

	cleanCfg, err := cleanConfig(cmd)
	if err != nil {
		return nil, err
	}
	rep, err := clean.Clean(t, cleanCfg)
	if err != nil {
		return nil, err
	}
	if rep.RowsDropped > 0 || rep.DatesUnparsed > 0 {
		fmt.Fprintf(os.Stderr, "cleaned: %d row(s) dropped, %d date(s) unparsed\n",
			rep.RowsDropped, rep.DatesUnparsed)
	}
	return t, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
