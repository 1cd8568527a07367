package orchestrator

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/ramihatou97/dcs-sub003/internal/llmadapter"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// extractBoth runs the Pattern Extractor and the LLM Extraction Adapter
// concurrently (spec.md §5's concurrency model), using the cache to
// skip either side when a prior run already computed it for this exact
// input/stage/model triple. A per-source failure never fails the
// group — only ctx cancellation does — so one side's failure still
// lets the other's result through (spec.md §4.5: pattern-only output
// is always a valid fallback).
func (o *Orchestrator) extractBoth(ctx context.Context, notes []model.NormalizedNote, anchors model.AnchorDates, hash string, enableLLM bool) (pattern model.PartialExtraction, llm model.PartialExtraction, outcome llmadapter.Outcome, cacheHits int) {
	g, gctx := errgroup.WithContext(ctx)

	var patternHit, llmHit bool

	g.Go(func() error {
		key := stageKey(hash, "pattern-extraction", "")
		if raw, ok := o.cache.Get(key); ok {
			if err := json.Unmarshal(raw, &pattern); err == nil {
				patternHit = true
				return nil
			}
		}
		select {
		case <-gctx.Done():
			return gctx.Err()
		default:
			pattern = o.extractor.Extract(notes, anchors)
			if raw, err := json.Marshal(pattern); err == nil {
				o.cache.Put(key, raw)
			}
			return nil
		}
	})

	g.Go(func() error {
		if !enableLLM {
			llm = model.NewPartialExtraction("llm")
			return nil
		}
		key := stageKey(hash, "llm-extraction", o.cacheModelLabel())
		if raw, ok := o.cache.Get(key); ok {
			if err := json.Unmarshal(raw, &llm); err == nil {
				llmHit = true
				return nil
			}
		}
		select {
		case <-gctx.Done():
			return gctx.Err()
		default:
			result, out, err := o.adapter.Extract(gctx, notes)
			if err != nil {
				log.Warnw("LLM extraction unavailable, proceeding with pattern-only entities", "error", err)
				llm = model.NewPartialExtraction("llm")
				outcome = out
				return nil // don't fail the group; pattern-only is a valid fallback
			}
			llm = *result
			outcome = out
			if raw, err := json.Marshal(llm); err == nil {
				o.cache.Put(key, raw)
			}
			return nil
		}
	})

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			log.Warnw("extraction fan-out canceled", "error", err)
		}
	}
	if patternHit {
		cacheHits++
	}
	if llmHit {
		cacheHits++
	}
	return pattern, llm, outcome, cacheHits
}

// cacheModelLabel names the LLM model-tier component of the cache key;
// the ladder's primary entry is the one consulted under normal
// operation, so its model name anchors the key (spec.md §9).
func (o *Orchestrator) cacheModelLabel() string {
	if len(o.providers.Ladder) == 0 {
		return "none"
	}
	return o.providers.Ladder[0].Model
}
