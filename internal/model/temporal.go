package model

import "time"

// TemporalCategory classifies the clinical timeframe a mention belongs to.
type TemporalCategory string

const (
	CategoryPast     TemporalCategory = "PAST"
	CategoryPresent  TemporalCategory = "PRESENT"
	CategoryFuture   TemporalCategory = "FUTURE"
	CategoryAdmission TemporalCategory = "ADMISSION"
	CategoryDischarge TemporalCategory = "DISCHARGE"
	CategoryPreop    TemporalCategory = "PREOP"
	CategoryPostop   TemporalCategory = "POSTOP"
	CategoryAcute    TemporalCategory = "ACUTE"
	CategoryChronic  TemporalCategory = "CHRONIC"
	CategoryUnknown  TemporalCategory = "UNKNOWN"
)

// MentionKind distinguishes a first-time occurrence from a back-reference
// or an ongoing-state restatement.
type MentionKind string

const (
	KindNewEvent    MentionKind = "new_event"
	KindReference   MentionKind = "reference"
	KindContinuation MentionKind = "continuation"
)

// TemporalContext is attached to every extracted entity by the Temporal
// Analyzer (spec.md §4.3).
type TemporalContext struct {
	Category TemporalCategory `json:"category"`
	Kind     MentionKind      `json:"kind"`
	// POD is the post-operative day, or nil when no POD notation matched.
	POD *int `json:"pod,omitempty"`
	// ResolvedDate is nil unless POD resolved against a surgery anchor,
	// or the mention carried an explicit date.
	ResolvedDate *time.Time `json:"resolvedDate,omitempty"`
	Confidence   float64    `json:"confidence"`

	// SecondaryCategory holds a conflicting category match (e.g. both
	// "chronic" and "acute" matched the same window) recorded at lower
	// confidence rather than silently discarded. Nil when there was no
	// conflict.
	SecondaryCategory *TemporalCategory `json:"secondaryCategory,omitempty"`
}
