// Package narrative implements the Narrative Generator (spec.md §4.8):
// composing the NarrativeSection structure either from a single LLM
// prompt (preferred) or from deterministic per-section templates.
package narrative

import (
	"context"
	"fmt"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/llmadapter"
	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/section"
)

var log = logging.Component("narrative")

// Generator composes NarrativeSection values. It holds the same
// provider fallback ladder the LLM Extraction Adapter walks, so a
// failure of the primary narrative provider falls through to the next
// rung before giving up to template mode.
type Generator struct {
	ladder []config.ProviderConfig
}

// New returns a Generator configured with the given provider ladder.
func New(providers config.ProvidersConfig) *Generator {
	return &Generator{ladder: providers.Ladder}
}

// Outcome reports which mode actually produced the narrative and which
// sections, if any, template mode had to fill after an LLM response
// came back incomplete.
type Outcome struct {
	Section     model.NarrativeSection
	Mode        string // "llm" or "template"
	Provider    string
	TemplatedFallback []model.SectionKey
}

// Generate produces the narrative. When deterministic is true (the
// orchestrator's fast/reproducible mode), it skips the LLM entirely.
func (g *Generator) Generate(ctx context.Context, record model.ExtractionRecord, timeline model.Timeline, deterministic bool) Outcome {
	if deterministic {
		return Outcome{Section: renderTemplate(record, timeline), Mode: "template"}
	}

	prompt := buildPrompt(record, timeline)
	for _, pc := range g.ladder {
		client, err := llmadapter.NewClient(ctx, pc)
		if err != nil {
			log.Warnw("narrative provider unavailable", "provider", pc.Name, "error", err)
			continue
		}
		resp, err := client.CompleteWithSystem(ctx, systemPrompt, prompt)
		if err != nil {
			log.Warnw("narrative provider call failed", "provider", pc.Name, "error", err)
			continue
		}

		parsed := section.Parse(resp)
		out := Outcome{Section: parsed.Section, Mode: "llm", Provider: pc.Name}
		if len(parsed.Missing) > 0 {
			out.Section = fillMissing(out.Section, parsed.Missing, record, timeline)
			out.TemplatedFallback = parsed.Missing
			log.Warnw("narrative LLM response incomplete, filled from template", "provider", pc.Name, "missing", parsed.Missing)
		}
		return out
	}

	log.Warnw("narrative generation exhausted provider ladder, using template mode")
	return Outcome{Section: renderTemplate(record, timeline), Mode: "template"}
}

// GenerateSection is the section completer (spec.md §4.9): a focused
// call for exactly one section, used when parsing leaves a section
// empty even after lenient mode.
func (g *Generator) GenerateSection(ctx context.Context, key model.SectionKey, record model.ExtractionRecord, timeline model.Timeline) (string, error) {
	for _, pc := range g.ladder {
		client, err := llmadapter.NewClient(ctx, pc)
		if err != nil {
			continue
		}
		prompt := fmt.Sprintf("Write only the %q section from:\n%s", key, buildPrompt(record, timeline))
		resp, err := client.CompleteWithSystem(ctx, systemPrompt, prompt)
		if err != nil {
			continue
		}
		parsed := section.Parse(resp)
		if text := parsed.Section.Get(key); text != "" {
			return text, nil
		}
	}

	text := fillMissing(model.NarrativeSection{}, []model.SectionKey{key}, record, timeline).Get(key)
	if text == "" {
		return "", fmt.Errorf("narrative: section completer produced no content for %q", key)
	}
	return text, nil
}

func fillMissing(sec model.NarrativeSection, missing []model.SectionKey, record model.ExtractionRecord, timeline model.Timeline) model.NarrativeSection {
	fallback := renderTemplate(record, timeline)
	for _, k := range missing {
		sec = sec.Set(k, fallback.Get(k))
	}
	return sec
}
