package model

// NarrativeSection is the fixed-key free-text structure produced by the
// Narrative Generator and consumed by the Section Parser and Quality
// Scorer (spec.md §3). Empty string is permitted only when the source
// genuinely lacked content for that section.
type NarrativeSection struct {
	ChiefComplaint          string `json:"chiefComplaint"`
	HistoryOfPresentIllness string `json:"historyOfPresentIllness"`
	HospitalCourse          string `json:"hospitalCourse"`
	Procedures              string `json:"procedures"`
	Complications           string `json:"complications"`
	Consultations           string `json:"consultations"`
	DischargeStatus         string `json:"dischargeStatus"`
	DischargeMedications    string `json:"dischargeMedications"`
	DischargeDisposition    string `json:"dischargeDisposition"`
	FollowUpPlan            string `json:"followUpPlan"`
}

// SectionKey names one of NarrativeSection's fields, used by the
// Section Parser and completer to address a section generically.
type SectionKey string

const (
	SectionChiefComplaint          SectionKey = "chiefComplaint"
	SectionHistoryOfPresentIllness SectionKey = "historyOfPresentIllness"
	SectionHospitalCourse          SectionKey = "hospitalCourse"
	SectionProcedures              SectionKey = "procedures"
	SectionComplications           SectionKey = "complications"
	SectionConsultations           SectionKey = "consultations"
	SectionDischargeStatus        SectionKey = "dischargeStatus"
	SectionDischargeMedications   SectionKey = "dischargeMedications"
	SectionDischargeDisposition   SectionKey = "dischargeDisposition"
	SectionFollowUpPlan           SectionKey = "followUpPlan"
)

// AllSectionKeys is the canonical, ordered section list used by the
// narrative prompt, the section parser, and completeness scoring.
var AllSectionKeys = []SectionKey{
	SectionChiefComplaint,
	SectionHistoryOfPresentIllness,
	SectionHospitalCourse,
	SectionProcedures,
	SectionComplications,
	SectionConsultations,
	SectionDischargeStatus,
	SectionDischargeMedications,
	SectionDischargeDisposition,
	SectionFollowUpPlan,
}

// CriticalSectionKeys must be non-empty or the quality report carries a
// critical issue and overall status is "incomplete" (spec.md §4.9).
var CriticalSectionKeys = []SectionKey{
	SectionChiefComplaint,
	SectionHospitalCourse,
	SectionDischargeDisposition,
}

// Get returns the text of the named section.
func (n NarrativeSection) Get(key SectionKey) string {
	switch key {
	case SectionChiefComplaint:
		return n.ChiefComplaint
	case SectionHistoryOfPresentIllness:
		return n.HistoryOfPresentIllness
	case SectionHospitalCourse:
		return n.HospitalCourse
	case SectionProcedures:
		return n.Procedures
	case SectionComplications:
		return n.Complications
	case SectionConsultations:
		return n.Consultations
	case SectionDischargeStatus:
		return n.DischargeStatus
	case SectionDischargeMedications:
		return n.DischargeMedications
	case SectionDischargeDisposition:
		return n.DischargeDisposition
	case SectionFollowUpPlan:
		return n.FollowUpPlan
	default:
		return ""
	}
}

// Set writes text into the named section, returning a copy.
func (n NarrativeSection) Set(key SectionKey, text string) NarrativeSection {
	switch key {
	case SectionChiefComplaint:
		n.ChiefComplaint = text
	case SectionHistoryOfPresentIllness:
		n.HistoryOfPresentIllness = text
	case SectionHospitalCourse:
		n.HospitalCourse = text
	case SectionProcedures:
		n.Procedures = text
	case SectionComplications:
		n.Complications = text
	case SectionConsultations:
		n.Consultations = text
	case SectionDischargeStatus:
		n.DischargeStatus = text
	case SectionDischargeMedications:
		n.DischargeMedications = text
	case SectionDischargeDisposition:
		n.DischargeDisposition = text
	case SectionFollowUpPlan:
		n.FollowUpPlan = text
	}
	return n
}
