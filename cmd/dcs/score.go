package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramihatou97/dcs-sub003/internal/orchestrator"
	"github.com/ramihatou97/dcs-sub003/internal/quality"
)

var scoreInputPath string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Re-score an existing extraction/narrative pair",
	Long: `score reads a JSON file shaped like "dcs generate --format json"'s
output and recomputes the quality report from its extracted entities and
narrative sections, without re-running extraction or generation.

Useful for checking whether a hand-edited narrative still passes the
quality gates.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInputPath, "input", "", "Path to a JSON file with \"extracted\" and \"narrative\" fields")
	scoreCmd.Flags().StringVar(&outputFormat, "format", "text", `Output format: "text" or "json"`)
	scoreCmd.MarkFlagRequired("input")
}

func runScore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(scoreInputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var input orchestrator.Response
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	scorer := quality.New()
	report := scorer.Score(input.Extracted, input.Narrative, 0, 0)

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		fmt.Println(renderQuality(report))
		return nil
	}
}
