// Package config loads pipeline configuration the way the teacher
// repo's internal/config package does: one Config assembled from
// yaml-tagged sub-structs, with a Default() constructor and a file
// loader that falls back to defaults on a missing file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Mode selects the orchestrator's latency/thoroughness trade-off
// (spec.md §6). The orchestrator logs the mode and echoes it in the
// resolved options; no stage reads it, so both modes run the same
// stages, timeouts and providers.
type Mode string

const (
	ModeFast             Mode = "fast"
	ModePreserveAllInfo  Mode = "preserve-all-info"
)

// ResponseFormat selects what the boundary response contains.
type ResponseFormat string

const (
	ResponseStructured ResponseFormat = "structured"
	ResponseNarrative  ResponseFormat = "narrative"
	ResponseBoth       ResponseFormat = "both"
)

// PipelineConfig governs orchestration behavior (spec.md §6 options,
// §4.11 refinement loop, §5 timeouts).
type PipelineConfig struct {
	Mode                   Mode           `yaml:"mode"`
	QualityThreshold       float64        `yaml:"quality_threshold"`
	MaxRefinementIterations int           `yaml:"max_refinement_iterations"`
	EnableLLM              bool           `yaml:"enable_llm"`
	ResponseFormat         ResponseFormat `yaml:"response_format"`

	// StageTimeout is the processing-time target the quality scorer's
	// timeliness dimension compares a request against; it cancels no
	// stage. LLMCallTimeout is loaded but not read: no provider call is
	// bounded by it (nor by ProviderConfig.Timeout).
	StageTimeout   time.Duration `yaml:"stage_timeout"`
	LLMCallTimeout time.Duration `yaml:"llm_call_timeout"`

	// MaxConcurrentProviderCalls is loaded but not read; provider calls
	// within a request are not limited by it.
	MaxConcurrentProviderCalls int `yaml:"max_concurrent_provider_calls"`
}

// ProviderConfig configures one LLM provider in the fallback ladder.
type ProviderConfig struct {
	Name    string        `yaml:"name"` // "primary", "secondary", "tertiary"
	Kind    string        `yaml:"kind"` // "genai" or "mock"; any other kind fails client construction
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ProvidersConfig is the ordered fallback ladder (spec.md §4.5, §4.11).
type ProvidersConfig struct {
	Ladder []ProviderConfig `yaml:"ladder"`
}

// CacheConfig governs the process-wide stage/LLM-response cache (spec.md §5, §9).
type CacheConfig struct {
	MaxEntries     int    `yaml:"max_entries"`
	ModelVersion   string `yaml:"model_version"`
	PersistPath    string `yaml:"persist_path"` // "" disables sqlite persistence
}

// LoggingConfig governs the zap logger.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Config is the full resolved configuration.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Default returns the configuration used when no file is supplied,
// matching the boundary defaults documented in spec.md §6.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Mode:                    ModePreserveAllInfo,
			QualityThreshold:        0.85,
			MaxRefinementIterations: 2,
			EnableLLM:               true,
			ResponseFormat:          ResponseBoth,
			StageTimeout:            20 * time.Second,
			LLMCallTimeout:          30 * time.Second,
			MaxConcurrentProviderCalls: 4,
		},
		Providers: ProvidersConfig{
			Ladder: []ProviderConfig{
				{Name: "primary", Kind: "genai", Model: "gemini-2.0-flash", Timeout: 30 * time.Second},
			},
		},
		Cache: CacheConfig{
			MaxEntries:   1000,
			ModelVersion: "v1",
		},
		Logging: LoggingConfig{Debug: false},
	}
}

// Load reads a YAML config file, falling back to Default() for any
// field the file doesn't set by unmarshaling onto a default instance.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
