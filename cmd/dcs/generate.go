package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/orchestrator"
)

var (
	notesPath        string
	outputFormat     string
	genMode          string
	genQualityMin    float64
	genMaxIterations int
	genNoLLM         bool
	genProvider      string
	genTimeout       time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the pipeline over a set of notes and produce a discharge summary",
	Long: `generate reads a JSON array of clinical notes and runs the full
pipeline: normalization, deduplication, extraction, entity merging,
timeline construction, narrative generation, and quality scoring.

Example:
  dcs generate --notes patient-42.json --format json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&notesPath, "notes", "", `Path to a JSON file: [{"text": "...", "authoredAt": "2026-01-01T00:00:00Z"}]`)
	generateCmd.Flags().StringVar(&outputFormat, "format", "text", `Output format: "text" or "json"`)
	generateCmd.Flags().StringVar(&genMode, "mode", "", "Override pipeline mode: fast or preserve-all-info")
	generateCmd.Flags().Float64Var(&genQualityMin, "quality-threshold", 0, "Override the refinement quality threshold")
	generateCmd.Flags().IntVar(&genMaxIterations, "max-iterations", 0, "Override the max refinement iterations")
	generateCmd.Flags().BoolVar(&genNoLLM, "no-llm", false, "Disable LLM extraction and narrative generation (pattern/template only)")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "Name of the provider ladder entry to try first")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 0, "Overall request timeout (0 disables)")
	generateCmd.MarkFlagRequired("notes")
}

type noteInput struct {
	Text       string     `json:"text"`
	AuthoredAt *time.Time `json:"authoredAt"`
}

func loadNotes(path string) ([]model.ClinicalNote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}
	var inputs []noteInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse notes file: %w", err)
	}
	notes := make([]model.ClinicalNote, len(inputs))
	for i, in := range inputs {
		notes[i] = model.ClinicalNote{Text: in.Text, AuthoredAt: in.AuthoredAt}
	}
	return notes, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	notes, err := loadNotes(notesPath)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return fmt.Errorf("generate: notes file contained no notes")
	}

	orch, err := orchestrator.New(cfg)
	if err != nil {
		return fmt.Errorf("build orchestrator: %w", err)
	}
	defer orch.Close()

	ctx := context.Background()
	if genTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, genTimeout)
		defer cancel()
	}

	opts := orchestrator.Options{
		Mode:                    config.Mode(genMode),
		QualityThreshold:        genQualityMin,
		MaxRefinementIterations: genMaxIterations,
		LLMProvider:             genProvider,
	}
	if genNoLLM {
		enableLLM := false
		opts.EnableLLM = &enableLLM
	}

	resp, err := orch.Run(ctx, notes, opts)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	default:
		fmt.Println(renderResponse(resp))
		return nil
	}
}
