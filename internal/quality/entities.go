package quality

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// nameOf extracts a lowercase display name for cross-checking an
// entity against narrative text. Mirrors internal/timeline's nameOf
// but kept local: quality has no need of the full (name, date) key,
// only the name half, and duplicating five lines avoids a needless
// cross-package dependency between two independently evolving parts
// of the pipeline.
func nameOf(e model.ExtractedEntity) string {
	switch v := e.Value.(type) {
	case model.ProcedureValue:
		return strings.ToLower(strings.TrimSpace(v.Name))
	case model.ComplicationValue:
		return strings.ToLower(strings.TrimSpace(v.Name))
	case model.MedicationValue:
		return strings.ToLower(strings.TrimSpace(v.Name))
	case model.ConsultationValue:
		return strings.ToLower(strings.TrimSpace(v.Service))
	case model.ImagingFindingValue:
		return strings.ToLower(strings.TrimSpace(v.Modality))
	case model.FollowUpValue:
		return strings.ToLower(strings.TrimSpace(v.Service))
	default:
		return ""
	}
}

func fullNarrativeText(n model.NarrativeSection) string {
	return strings.ToLower(strings.Join([]string{
		n.ChiefComplaint, n.HistoryOfPresentIllness, n.HospitalCourse,
		n.Procedures, n.Complications, n.Consultations, n.DischargeStatus,
		n.DischargeMedications, n.DischargeDisposition, n.FollowUpPlan,
	}, " "))
}
