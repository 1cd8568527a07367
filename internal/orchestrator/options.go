// Package orchestrator wires every pipeline stage together (spec.md
// §4.11): normalization, deduplication, concurrent pattern/LLM
// extraction, entity merging, timeline construction, narrative
// generation, and quality scoring, with caching, a refinement loop,
// and provider fallback provenance at the external boundary (spec.md
// §6).
package orchestrator

import "github.com/ramihatou97/dcs-sub003/internal/config"

// Options is the per-request override of the orchestrator's default
// pipeline configuration (spec.md §6 generation request options). A
// zero value for any field means "use the configured default".
type Options struct {
	Mode                    config.Mode
	QualityThreshold        float64
	MaxRefinementIterations int
	EnableLLM               *bool
	LLMProvider             string
	ResponseFormat          config.ResponseFormat
}

// resolved merges opts over the pipeline defaults, so callers only
// need to set the fields they want to override.
func resolved(base config.PipelineConfig, opts Options) config.PipelineConfig {
	out := base
	if opts.Mode != "" {
		out.Mode = opts.Mode
	}
	if opts.QualityThreshold > 0 {
		out.QualityThreshold = opts.QualityThreshold
	}
	if opts.MaxRefinementIterations > 0 {
		out.MaxRefinementIterations = opts.MaxRefinementIterations
	}
	if opts.EnableLLM != nil {
		out.EnableLLM = *opts.EnableLLM
	}
	if opts.ResponseFormat != "" {
		out.ResponseFormat = opts.ResponseFormat
	}
	return out
}

// ladderFor returns the provider ladder to use for this request,
// reordering to start at opts.LLMProvider when the caller named one
// that exists in the configured ladder (spec.md §6 llmProvider hint).
func ladderFor(base config.ProvidersConfig, opts Options) config.ProvidersConfig {
	if opts.LLMProvider == "" {
		return base
	}
	idx := -1
	for i, pc := range base.Ladder {
		if pc.Name == opts.LLMProvider {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return base
	}
	reordered := make([]config.ProviderConfig, 0, len(base.Ladder))
	reordered = append(reordered, base.Ladder[idx])
	reordered = append(reordered, base.Ladder[:idx]...)
	reordered = append(reordered, base.Ladder[idx+1:]...)
	return config.ProvidersConfig{Ladder: reordered}
}
