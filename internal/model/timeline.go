package model

// EventRelation places a timeline event relative to the closest surgery.
type EventRelation string

const (
	RelationPreAdmission EventRelation = "preAdmission"
	RelationPreOp        EventRelation = "preOp"
	RelationIntraOp      EventRelation = "intraOp"
	RelationPostOp       EventRelation = "postOp"
)

// TimelineEvent is one ordered entry in the Timeline (spec.md §4.7).
type TimelineEvent struct {
	// Date is an ISO date, or "" when the event's date could not be
	// resolved; such events sink to the end in input order.
	Date        string     `json:"date"`
	Type        EntityKind `json:"type"`
	Description string     `json:"description"`
	// Relationships links reference mentions back to this event by
	// (normalized name, date) handle, never by pointer, to avoid
	// cyclic object graphs (spec.md §9).
	Relationships      []NormalizedKey `json:"relationships"`
	POD                *int            `json:"pod,omitempty"`
	DaysSinceAdmission *int            `json:"daysSinceAdmission,omitempty"`
	Relation           EventRelation   `json:"relation"`

	// Entity is the originating new_event entity this timeline entry
	// was built from.
	Entity ExtractedEntity `json:"entity"`
}

// Timeline is the ordered event sequence plus its reference count,
// used by tests to check the reference-linking invariant in spec.md §8.
type Timeline struct {
	Events         []TimelineEvent `json:"events"`
	ReferenceCount int             `json:"referenceCount"`
}
