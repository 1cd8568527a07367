// Package dedup implements the Semantic Deduplicator (spec.md §4.2):
// a four-phase pipeline that removes redundant notes and sentences
// while preserving chronology and the information-preservation
// invariant.
package dedup

import (
	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("dedup")

// Deduplicator holds the per-phase similarity thresholds. Defaults
// match spec.md §4.2; callers may tune them via config.
type Deduplicator struct {
	NearThreshold      float64
	SentenceThreshold  float64
	ComplementLow      float64
	ComplementHigh     float64
}

// New returns a Deduplicator configured with spec.md §4.2's default
// thresholds.
func New() *Deduplicator {
	return &Deduplicator{
		NearThreshold:     0.85,
		SentenceThreshold: 0.90,
		ComplementLow:     0.30,
		ComplementHigh:    0.60,
	}
}

// Dedupe runs all four phases in order and reports the resulting
// metrics.
func (d *Deduplicator) Dedupe(notes []model.NormalizedNote) ([]model.NormalizedNote, model.DedupMetrics) {
	original := len(notes)

	afterExact, exactDropped := exactDedup(notes)
	afterNear, nearDropped := nearDedup(afterExact, d.NearThreshold)
	afterSentence, sentenceDropped := sentenceDedup(afterNear, d.SentenceThreshold)
	final, merged := complementMerge(afterSentence, d.ComplementLow, d.ComplementHigh)

	metrics := model.DedupMetrics{
		OriginalCount:   original,
		FinalCount:      len(final),
		ExactDropped:    exactDropped,
		NearDropped:     nearDropped,
		SentenceDropped: sentenceDropped,
		Merged:          merged,
	}
	if original > 0 {
		metrics.ReductionPct = float64(original-len(final)) / float64(original) * 100
	}

	log.Infow("deduplication complete",
		"original", original,
		"final", len(final),
		"reductionPct", metrics.ReductionPct,
	)
	return final, metrics
}
