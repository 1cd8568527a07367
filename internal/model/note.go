// Package model holds the shared data types that flow through the
// synthesis pipeline: raw notes, extracted entities, the timeline, the
// narrative, and the quality report. Every other package depends on
// this one; it depends on nothing in this module.
package model

import "time"

// ClinicalNote is one raw, unstructured note as supplied by the caller.
type ClinicalNote struct {
	Text string `json:"text"`
	// AuthoredAt is an optional hint for when the note was written.
	// Nil when the caller did not supply one; the Normalizer and
	// Timeline Builder infer dates from text content in that case.
	AuthoredAt *time.Time `json:"authoredAt,omitempty"`
}

// NormalizedNote is a ClinicalNote after normalization: ISO timestamps,
// canonical section headers, standardized abbreviation spacing.
// Normalization never deletes tokens, only rewrites them.
type NormalizedNote struct {
	Text       string     `json:"text"`
	AuthoredAt *time.Time `json:"authoredAt,omitempty"`
	// SourceIndex is the position of the originating note in the
	// caller-supplied, order-preserved input slice.
	SourceIndex int `json:"sourceIndex"`
}

// AnchorDates are the reference dates extracted by the Normalizer,
// used by the Temporal Analyzer to resolve POD notation and by the
// Timeline Builder to infer missing admission/discharge dates.
type AnchorDates struct {
	Admission *time.Time `json:"admission,omitempty"`
	// Surgeries holds every detected surgery/procedure date, in the
	// order encountered. Multiple surgeries are expected in complex
	// hospitalizations; POD resolution picks the closest preceding one.
	Surgeries []time.Time `json:"surgeries"`
	Ictus     *time.Time  `json:"ictus,omitempty"`
	Discharge *time.Time  `json:"discharge,omitempty"`
}
