// Package main implements dcs, the discharge-summary synthesis CLI.
//
// Commands are split across files the way the teacher's CLI entry
// point is:
//
//	main.go     - entry point, rootCmd, global flags
//	generate.go - generateCmd: runs the full pipeline over input notes
//	score.go    - scoreCmd: re-scores an existing extraction/narrative pair
//	config.go   - configCmd/configShowCmd: resolved configuration dump
//	render.go   - lipgloss rendering for terminal output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/logging"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dcs",
	Short: "Discharge summary synthesis pipeline",
	Long: `dcs turns a set of raw clinical notes into a structured extraction,
a chronological timeline, a narrative discharge summary, and a quality
report.

Run "dcs generate" with a JSON note file to produce a full response, or
"dcs config show" to inspect the resolved pipeline configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if verbose {
			loaded.Logging.Debug = true
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (defaults used if absent)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
