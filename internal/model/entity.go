package model

// EntityKind discriminates the extracted-entity union. Every
// ExtractedEntity carries exactly one kind; the merger and timeline
// builder switch on it instead of inspecting a loosely-typed map.
type EntityKind string

const (
	EntityDemographic        EntityKind = "demographic"
	EntityDate               EntityKind = "date"
	EntityDiagnosis          EntityKind = "diagnosis"
	EntityProcedure          EntityKind = "procedure"
	EntityMedication         EntityKind = "medication"
	EntityComplication       EntityKind = "complication"
	EntityExaminationFinding EntityKind = "examinationFinding"
	EntityFunctionalScore    EntityKind = "functionalScore"
	EntityConsultation       EntityKind = "consultation"
	EntityImagingFinding     EntityKind = "imagingFinding"
	EntityDischargeDisposition EntityKind = "dischargeDisposition"
	EntityFollowUp           EntityKind = "followUp"
)

// SourceSpan locates the text a mention was extracted from, for audit
// and for accuracy scoring cross-checks.
type SourceSpan struct {
	NoteIndex int    `json:"noteIndex"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Text      string `json:"text"`
}

// ExtractedEntity is the discriminated record described in spec.md §3.
// Value holds kind-specific fields; see the Value* types in this file.
type ExtractedEntity struct {
	Kind            EntityKind      `json:"kind"`
	Value           EntityValue     `json:"value"`
	SourceSpan      SourceSpan      `json:"sourceSpan"`
	Confidence      float64         `json:"confidence"`
	TemporalContext TemporalContext `json:"temporalContext"`

	// Origin records which extractor(s) produced this entity, filled in
	// by the merger: "pattern", "llm", or "pattern+llm".
	Origin string `json:"origin"`
}

// EntityValue is implemented by every kind-specific value struct below.
// It exists purely to give ExtractedEntity.Value a named type instead of
// `any`; callers type-switch or type-assert based on ExtractedEntity.Kind.
type EntityValue interface {
	isEntityValue()
}

// NormalizedKey returns the (normalized-name, date) identity used for
// deduplication and reference linking across every collection kind
// (spec.md §3 ExtractionRecord invariant, §4.7 Timeline invariant).
type NormalizedKey struct {
	Name string `json:"name"`
	Date string `json:"date"` // ISO date, or "" when unknown
}

type DemographicValue struct {
	Field string `json:"field"` // "name", "mrn", "dob", "age", "gender", "attending"
	Raw   string `json:"raw"`
}

func (DemographicValue) isEntityValue() {}

type DateValue struct {
	Field string `json:"field"` // "admission", "surgery", "discharge", "ictus"
	ISO   string `json:"iso"`
}

func (DateValue) isEntityValue() {}

type ScoreValue struct {
	Scale string  `json:"scale"` // "huntHess", "fisher", "modifiedFisher", "gcsTotal", "gcsE", "gcsM", "gcsV", "mrs", "kps", "ecog", "nihss"
	Value float64 `json:"value"`
	// Computed is true when the score was inferred from PT/OT or exam
	// text rather than read verbatim (spec.md §1 Non-goals exception).
	Computed bool `json:"computed"`
}

func (ScoreValue) isEntityValue() {}

type ProcedureValue struct {
	Name   string `json:"name"` // normalized procedure name, e.g. "coiling"
	Raw    string `json:"raw"`
	Date   string `json:"date"`   // ISO date or ""
	Detail string `json:"detail"` // free-text detail, e.g. laterality/location/size
}

func (ProcedureValue) isEntityValue() {}

type MedicationValue struct {
	Name     string `json:"name"`
	Category string `json:"category"` // "anticoagulation", "AED", "antibiotic", "other"
	Dose     string `json:"dose"`
	Route    string `json:"route"`
}

func (MedicationValue) isEntityValue() {}

type ComplicationValue struct {
	Name     string `json:"name"`
	Raw      string `json:"raw"`
	Date     string `json:"date"`
	Severity string `json:"severity"`
}

func (ComplicationValue) isEntityValue() {}

type ExaminationFindingValue struct {
	System  string `json:"system"` // "neuro", "cardiac", "pulm", ...
	Finding string `json:"finding"`
}

func (ExaminationFindingValue) isEntityValue() {}

type ConsultationValue struct {
	Service string `json:"service"`
	Reason  string `json:"reason"`
	Date    string `json:"date"`
}

func (ConsultationValue) isEntityValue() {}

type ImagingFindingValue struct {
	Modality string `json:"modality"` // "CT", "MRI", "angiography"
	Finding  string `json:"finding"`
	Date     string `json:"date"`
}

func (ImagingFindingValue) isEntityValue() {}

type DischargeDispositionValue struct {
	Disposition string `json:"disposition"` // "home", "rehab", "SNF", ...
	Raw         string `json:"raw"`
}

func (DischargeDispositionValue) isEntityValue() {}

type FollowUpValue struct {
	Service string `json:"service"`
	Timing  string `json:"timing"`
	Raw     string `json:"raw"`
}

func (FollowUpValue) isEntityValue() {}
