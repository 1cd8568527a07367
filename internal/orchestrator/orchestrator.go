package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ramihatou97/dcs-sub003/internal/cache"
	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/dedup"
	"github.com/ramihatou97/dcs-sub003/internal/extraction"
	"github.com/ramihatou97/dcs-sub003/internal/llmadapter"
	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/merge"
	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/narrative"
	"github.com/ramihatou97/dcs-sub003/internal/normalizer"
	"github.com/ramihatou97/dcs-sub003/internal/quality"
	"github.com/ramihatou97/dcs-sub003/internal/timeline"
)

var log = logging.Component("orchestrator")

// Orchestrator coordinates every pipeline stage over one configuration
// (spec.md §4.11). It holds no per-request state; Run is safe to call
// concurrently from multiple goroutines sharing one instance.
type Orchestrator struct {
	cfg       *config.Config
	providers config.ProvidersConfig

	dedup     *dedup.Deduplicator
	extractor *extraction.Extractor
	adapter   *llmadapter.Adapter
	merger    *merge.Merger
	timeline  *timeline.Builder
	quality   *quality.Scorer
	cache     *cache.Cache
}

// New builds an Orchestrator from a resolved configuration.
func New(cfg *config.Config) (*Orchestrator, error) {
	extractor, err := extraction.New(time.Now())
	if err != nil {
		return nil, err
	}
	c, err := cache.New(cfg.Cache.MaxEntries, cfg.Cache.PersistPath)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		cfg:       cfg,
		providers: cfg.Providers,
		dedup:     dedup.New(),
		extractor: extractor,
		adapter:   llmadapter.New(cfg.Providers),
		merger:    merge.New(),
		timeline:  timeline.New(),
		quality:   quality.New(),
		cache:     c,
	}, nil
}

// Close releases the orchestrator's cache resources.
func (o *Orchestrator) Close() error { return o.cache.Close() }

// Run executes the full pipeline over notes and returns the boundary
// response (spec.md §6). ctx cancellation is honored at every
// concurrent stage and every provider call.
func (o *Orchestrator) Run(ctx context.Context, notes []model.ClinicalNote, opts Options) (Response, error) {
	start := time.Now()
	requestID := uuid.NewString()
	pipelineCfg := resolved(o.cfg.Pipeline, opts)
	ladder := ladderFor(o.providers, opts)

	normalized := normalizer.NormalizeAll(notes)
	anchors := normalizer.ExtractAnchors(normalized)

	deduped, dedupMetrics := o.dedup.Dedupe(normalized)
	log.Infow("request started",
		"requestId", requestID,
		"notes", len(notes),
		"afterDedup", len(deduped),
		"mode", pipelineCfg.Mode,
	)

	hash := inputHash(deduped)
	pattern, llmResult, extractOutcome, cacheHits := o.extractBoth(ctx, deduped, anchors, hash, pipelineCfg.EnableLLM)
	if err := ctx.Err(); err != nil {
		log.Warnw("request canceled during extraction", "error", err)
		return Response{}, err
	}
	record := o.merger.Merge(pattern, llmResult)

	tl := o.timeline.Build(record, anchors)

	deterministic := !pipelineCfg.EnableLLM || len(ladder.Ladder) == 0
	gen := narrative.New(ladder)
	narrativeOutcome := gen.Generate(ctx, record, tl, deterministic)

	target := pipelineCfg.StageTimeout
	report := o.quality.Score(record, narrativeOutcome.Section, time.Since(start), target)

	report, narrativeOutcome, iterations := o.refine(ctx, gen, record, tl, report, narrativeOutcome, pipelineCfg, target, start)

	providerUsed := extractOutcome.Provider
	if narrativeOutcome.Mode == "llm" && narrativeOutcome.Provider != "" {
		providerUsed = narrativeOutcome.Provider
	}

	resp := Response{
		Extracted: record,
		Narrative: narrativeOutcome.Section,
		Timeline:  tl,
		Quality:   report,
		Metadata: Metadata{
			RequestID:        requestID,
			ProcessingTimeMs: time.Since(start).Milliseconds(),
			ProviderUsed:     providerUsed,
			FallbacksFired:   extractOutcome.FallbacksFired,
			CacheHits:        cacheHits,
			Iterations:       iterations,
		},
	}

	log.Infow("request complete",
		"requestId", requestID,
		"overall", report.Overall,
		"rating", model.Rating(report.Overall),
		"iterations", iterations,
		"dedupReductionPct", dedupMetrics.ReductionPct,
		"processingTimeMs", resp.Metadata.ProcessingTimeMs,
	)
	return resp, nil
}
