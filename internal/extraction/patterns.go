package extraction

import "regexp"

// family names one group of related patterns. The constants only label
// the groups below; neither the extractor nor its tests reference them.
type family string

const (
	familyDemographics  family = "demographics"
	familyDates         family = "dates"
	familyScores        family = "scores"
	familyProcedures    family = "procedures"
	familyComplications family = "complications"
	familyMedications   family = "medications"
	familyImaging       family = "imaging"
	familyConsultations family = "consultations"
	familyDisposition   family = "disposition"
	familyFollowUp      family = "followUp"
)

// scorePattern declares one clinical/functional score's regex and the
// scale name recorded on the resulting ScoreValue. Hunt-Hess and
// (modified) Fisher are kept as disjoint families per DESIGN.md's
// Open Question resolution — no single pattern attempts to cover both.
type scorePattern struct {
	scale      string
	re         *regexp.Regexp
	confidence float64
}

var scorePatterns = []scorePattern{
	{"huntHess", regexp.MustCompile(`(?i)\bHunt-Hess\s*(?:grade|score)?\s*(?:of|:)?\s*([IVX]+|\d)\b`), ConfidenceHigh},
	{"fisher", regexp.MustCompile(`(?i)\b(?:modified\s+)?Fisher\s*(?:grade|score)?\s*(?:of|:)?\s*(\d)\b`), ConfidenceHigh},
	{"gcsTotal", regexp.MustCompile(`(?i)\bGCS\s*(?:of|:|score)?\s*(\d{1,2})\b`), ConfidenceHigh},
	{"gcsE", regexp.MustCompile(`(?i)\bE\s*[:=]?\s*(\d)\s*M\s*[:=]?\s*\d\s*V\s*[:=]?\s*\d\b`), ConfidenceMedium},
	{"mrs", regexp.MustCompile(`(?i)\bmRS\s*(?:of|:|score)?\s*(\d)\b`), ConfidenceHigh},
	{"kps", regexp.MustCompile(`(?i)\bKPS\s*(?:of|:|score)?\s*(\d{1,3})\b`), ConfidenceHigh},
	{"ecog", regexp.MustCompile(`(?i)\bECOG\s*(?:of|:|score)?\s*(\d)\b`), ConfidenceHigh},
	{"nihss", regexp.MustCompile(`(?i)\bNIHSS\s*(?:of|:|score)?\s*(\d{1,2})\b`), ConfidenceHigh},
}

// modifiedFisherPrefixRe is checked against the text around each Fisher
// match, so "modified Fisher 3" is recorded as modifiedFisher and never
// also as a bare Fisher score.
var modifiedFisherPrefixRe = regexp.MustCompile(`(?i)\bmodified\s+fisher\b`)

// procedurePattern declares one named procedure's surface forms.
type procedurePattern struct {
	name       string
	re         *regexp.Regexp
	confidence float64
}

var procedurePatterns = []procedurePattern{
	{"craniotomy", regexp.MustCompile(`(?i)\bcraniotom(?:y|ies)\b`), ConfidenceHigh},
	{"craniectomy", regexp.MustCompile(`(?i)\bcraniectom(?:y|ies)\b`), ConfidenceHigh},
	{"EVD placement", regexp.MustCompile(`(?i)\b(?:EVD|external ventricular drain)\s*(?:placement|placed)?\b`), ConfidenceHigh},
	{"coiling", regexp.MustCompile(`(?i)\bcoiling\b`), ConfidenceHigh},
	{"clipping", regexp.MustCompile(`(?i)\bclipping\b`), ConfidenceHigh},
	{"fusion", regexp.MustCompile(`(?i)\b(?:spinal\s+)?fusion\b`), ConfidenceHigh},
	{"washout", regexp.MustCompile(`(?i)\bwashout\b`), ConfidenceMedium},
	{"laminectomy", regexp.MustCompile(`(?i)\blaminectom(?:y|ies)\b`), ConfidenceHigh},
	{"shunt placement", regexp.MustCompile(`(?i)\b(?:VP|ventriculoperitoneal)\s*shunt\s*(?:placement|placed)?\b`), ConfidenceHigh},
}

// complicationPattern declares one named complication's surface forms.
type complicationPattern struct {
	name       string
	re         *regexp.Regexp
	confidence float64
}

var complicationPatterns = []complicationPattern{
	{"vasospasm", regexp.MustCompile(`(?i)\bvasospasm\b`), ConfidenceHigh},
	{"hydrocephalus", regexp.MustCompile(`(?i)\bhydrocephalus\b`), ConfidenceHigh},
	{"seizure", regexp.MustCompile(`(?i)\bseizure(?:s)?\b`), ConfidenceHigh},
	{"infection", regexp.MustCompile(`(?i)\b(?:wound\s+)?infection\b`), ConfidenceMedium},
	{"pulmonary embolism", regexp.MustCompile(`(?i)\b(?:PE|pulmonary embolism)\b`), ConfidenceHigh},
	{"DVT", regexp.MustCompile(`(?i)\b(?:DVT|deep vein thrombosis)\b`), ConfidenceHigh},
	{"neurogenic shock", regexp.MustCompile(`(?i)\bneurogenic shock\b`), ConfidenceHigh},
	{"fever", regexp.MustCompile(`(?i)\bfever\b`), ConfidenceMedium},
}

// medicationPattern declares one medication category's surface forms.
type medicationPattern struct {
	name       string
	category   string
	re         *regexp.Regexp
	confidence float64
}

var medicationPatterns = []medicationPattern{
	{"heparin", "anticoagulation", regexp.MustCompile(`(?i)\bheparin\b`), ConfidenceHigh},
	{"enoxaparin", "anticoagulation", regexp.MustCompile(`(?i)\benoxaparin\b`), ConfidenceHigh},
	{"warfarin", "anticoagulation", regexp.MustCompile(`(?i)\bwarfarin\b`), ConfidenceHigh},
	{"apixaban", "anticoagulation", regexp.MustCompile(`(?i)\bapixaban\b`), ConfidenceHigh},
	{"levetiracetam", "AED", regexp.MustCompile(`(?i)\b(?:levetiracetam|keppra)\b`), ConfidenceHigh},
	{"phenytoin", "AED", regexp.MustCompile(`(?i)\bphenytoin\b`), ConfidenceHigh},
	{"vancomycin", "antibiotic", regexp.MustCompile(`(?i)\bvancomycin\b`), ConfidenceHigh},
	{"ceftriaxone", "antibiotic", regexp.MustCompile(`(?i)\bceftriaxone\b`), ConfidenceHigh},
	{"dexamethasone", "other", regexp.MustCompile(`(?i)\bdexamethasone\b`), ConfidenceHigh},
	{"nimodipine", "other", regexp.MustCompile(`(?i)\bnimodipine\b`), ConfidenceHigh},
}

// imagingPattern declares one imaging modality's surface forms.
type imagingPattern struct {
	modality   string
	re         *regexp.Regexp
	confidence float64
}

var imagingPatterns = []imagingPattern{
	{"CT", regexp.MustCompile(`(?i)\bCT\s*(?:head|brain|spine)?\b`), ConfidenceMedium},
	{"MRI", regexp.MustCompile(`(?i)\bMRI\s*(?:head|brain|spine)?\b`), ConfidenceMedium},
	{"angiography", regexp.MustCompile(`(?i)\b(?:CTA|angiogram|angiography)\b`), ConfidenceMedium},
}

// consultationRe captures "<Service> consult(ed|ation) for <reason>".
var consultationRe = regexp.MustCompile(`(?i)\b(\w+(?:\s+\w+)?)\s+consult(?:ed|ation)?\s*(?:for|regarding)?\s*([^.\n]{0,80})`)

// dispositionRe captures the discharge disposition phrase.
var dispositionRe = regexp.MustCompile(`(?i)\bdischarged?\s+(?:to|home)\s*([a-zA-Z \-]{0,30})?`)

// followUpRe captures "follow up with <service> in <timing>".
var followUpRe = regexp.MustCompile(`(?i)\bfollow[- ]?up\s+with\s+([^.\n]{0,40}?)\s+in\s+([^.\n]{0,20})`)

// demographics scalar patterns.
var (
	nameRe      = regexp.MustCompile(`(?i)\bpatient(?:'s)? name\s*:?\s*([A-Za-z ,.'-]{2,60})`)
	mrnRe       = regexp.MustCompile(`(?i)\bMRN\s*:?\s*#?\s*(\d{4,12})\b`)
	dobRe       = regexp.MustCompile(`(?i)\bDOB\s*:?\s*(\d{4}-\d{2}-\d{2})\b`)
	ageRe       = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:yo|y\.o\.|year[- ]old)\b`)
	genderRe    = regexp.MustCompile(`(?i)\b(male|female|man|woman)\b`)
	attendingRe = regexp.MustCompile(`(?i)\battending\s*:?\s*(?:Dr\.?\s*)?([A-Za-z ,.'-]{2,40})`)
)

// dates scalar patterns (post-normalization, dates are already ISO).
var (
	admissionDateRe = regexp.MustCompile(`(?i)\badmission\b[^.\n]{0,40}?(\d{4}-\d{2}-\d{2})`)
	surgeryDateRe   = regexp.MustCompile(`(?i)\b(?:underwent|performed|surg(?:ery|ical procedure))\b[^.\n]{0,60}?(\d{4}-\d{2}-\d{2})`)
	dischargeDateRe = regexp.MustCompile(`(?i)\bdischarg(?:e|ed)\b[^.\n]{0,40}?(\d{4}-\d{2}-\d{2})`)
	ictusDateRe     = regexp.MustCompile(`(?i)\bictus\b[^.\n]{0,40}?(\d{4}-\d{2}-\d{2})`)
)
