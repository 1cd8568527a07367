package orchestrator

import "github.com/ramihatou97/dcs-sub003/internal/model"

// Metadata reports how a generation request was actually served
// (spec.md §6 generation response metadata).
type Metadata struct {
	// RequestID correlates every log line a single Run call emits across
	// the pipeline's stages; it has no bearing on caching or retries.
	RequestID        string   `json:"requestId"`
	ProcessingTimeMs int64    `json:"processingTimeMs"`
	ProviderUsed     string   `json:"providerUsed"`
	FallbacksFired   []string `json:"fallbacksFired"`
	CacheHits        int      `json:"cacheHits"`
	Iterations       int      `json:"iterations"`
}

// Response is the full boundary response assembled by Run (spec.md §6).
type Response struct {
	Extracted model.ExtractionRecord `json:"extracted"`
	Narrative model.NarrativeSection `json:"narrative"`
	Timeline  model.Timeline         `json:"timeline"`
	Quality   model.QualityReport    `json:"quality"`
	Metadata  Metadata               `json:"metadata"`
}
