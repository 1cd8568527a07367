package model

// DedupMetrics reports what the Semantic Deduplicator did to one
// request's note set (spec.md §4.2).
type DedupMetrics struct {
	OriginalCount   int     `json:"originalCount"`
	FinalCount      int     `json:"finalCount"`
	ReductionPct    float64 `json:"reductionPct"`
	ExactDropped    int     `json:"exactDropped"`
	NearDropped     int     `json:"nearDropped"`
	SentenceDropped int     `json:"sentenceDropped"`
	Merged          int     `json:"merged"`
}
