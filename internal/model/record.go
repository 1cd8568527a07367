package model

// Demographics is the single-valued demographic bundle. Scalar fields
// that were never matched are left at their zero value; presence is
// checked by the caller via the empty string / nil, not a separate flag.
type Demographics struct {
	Name      string `json:"name"`
	MRN       string `json:"mrn"`
	DOB       string `json:"dob"` // ISO date or ""
	Age       *int   `json:"age,omitempty"`
	Gender    string `json:"gender"`
	Attending string `json:"attending"`
}

// Dates holds the scalar admission/surgery/discharge/ictus anchors once
// resolved. Surgery is a slice because multiple operative dates are
// common in a neurosurgical hospitalization; the other fields are
// single-valued per spec.md §3.
type Dates struct {
	Admission string   `json:"admission"`
	Surgery   []string `json:"surgery"`
	Discharge string   `json:"discharge"`
	Ictus     string   `json:"ictus"`
}

// ExtractionRecord is the top-level structured output (spec.md §3, §6).
// Field names and nesting are part of the external contract and must
// not be reordered or renamed without a version bump.
type ExtractionRecord struct {
	Demographics  Demographics      `json:"demographics"`
	Dates         Dates             `json:"dates"`
	Scores        []ExtractedEntity `json:"scores"`        // ScoreValue
	Procedures    []ExtractedEntity `json:"procedures"`    // ProcedureValue
	Medications   []ExtractedEntity `json:"medications"`   // MedicationValue
	Complications []ExtractedEntity `json:"complications"` // ComplicationValue
	Examinations  []ExtractedEntity `json:"examinations"`  // ExaminationFindingValue
	Consultations []ExtractedEntity `json:"consultations"` // ConsultationValue
	Imaging       []ExtractedEntity `json:"imaging"`        // ImagingFindingValue
	Disposition   *ExtractedEntity  `json:"disposition,omitempty"` // DischargeDispositionValue
	FollowUps     []ExtractedEntity `json:"followUps"`      // FollowUpValue

	// AuditDisagreements records scalar fields where pattern and LLM
	// extraction disagreed, even though one was ultimately chosen
	// (spec.md §4.6).
	AuditDisagreements []Disagreement `json:"auditDisagreements"`

	// Suggestions and ValidationWarnings are advisory, LLM-sourced
	// signals (spec.md §4.5); they never override extracted values.
	Suggestions        []string `json:"suggestions"`
	ValidationWarnings []string `json:"validationWarnings"`
}

// Disagreement records a scalar field where pattern- and LLM-derived
// values differed and one was chosen by confidence.
type Disagreement struct {
	Field        string `json:"field"`
	PatternValue string `json:"patternValue"`
	LLMValue     string `json:"llmValue"`
	Chosen       string `json:"chosen"`
	Reason       string `json:"reason"`
}

// PartialExtraction is what one extractor (Pattern Extractor or LLM
// Extraction Adapter) produces on its own, before the Entity Merger
// reconciles pattern- and LLM-derived results into a single
// ExtractionRecord (spec.md §4.6). Scalars carries demographic/date
// mentions as entities (so each carries its own confidence); the
// collection fields mirror ExtractionRecord's shape directly.
type PartialExtraction struct {
	Source string `json:"source"` // "pattern" or "llm"

	Scalars []ExtractedEntity `json:"scalars"` // DemographicValue / DateValue

	Scores        []ExtractedEntity `json:"scores"`
	Procedures    []ExtractedEntity `json:"procedures"`
	Medications   []ExtractedEntity `json:"medications"`
	Complications []ExtractedEntity `json:"complications"`
	Examinations  []ExtractedEntity `json:"examinations"`
	Consultations []ExtractedEntity `json:"consultations"`
	Imaging       []ExtractedEntity `json:"imaging"`
	Disposition   []ExtractedEntity `json:"disposition"`
	FollowUps     []ExtractedEntity `json:"followUps"`

	Suggestions        []string `json:"suggestions"`
	ValidationWarnings []string `json:"validationWarnings"`
}

// NewPartialExtraction returns a zero-valued partial result with every
// slice initialized empty.
func NewPartialExtraction(source string) PartialExtraction {
	return PartialExtraction{
		Source:        source,
		Scalars:       []ExtractedEntity{},
		Scores:        []ExtractedEntity{},
		Procedures:    []ExtractedEntity{},
		Medications:   []ExtractedEntity{},
		Complications: []ExtractedEntity{},
		Examinations:  []ExtractedEntity{},
		Consultations: []ExtractedEntity{},
		Imaging:       []ExtractedEntity{},
		Disposition:   []ExtractedEntity{},
		FollowUps:     []ExtractedEntity{},
	}
}

// NewExtractionRecord returns a zero-valued record with all slices
// initialized empty (never nil), so JSON marshaling emits `[]` rather
// than `null` for the external contract.
func NewExtractionRecord() ExtractionRecord {
	return ExtractionRecord{
		Scores:             []ExtractedEntity{},
		Procedures:         []ExtractedEntity{},
		Medications:        []ExtractedEntity{},
		Complications:      []ExtractedEntity{},
		Examinations:       []ExtractedEntity{},
		Consultations:      []ExtractedEntity{},
		Imaging:            []ExtractedEntity{},
		FollowUps:          []ExtractedEntity{},
		AuditDisagreements: []Disagreement{},
		Suggestions:        []string{},
		ValidationWarnings: []string{},
	}
}
