package timeline

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// collectEntities flattens every collection in an ExtractionRecord into
// one slice, preserving relative order within and across collections so
// sorting remains stable for same-date/no-date ties.
func collectEntities(record model.ExtractionRecord) []model.ExtractedEntity {
	var all []model.ExtractedEntity
	all = append(all, record.Scores...)
	all = append(all, record.Procedures...)
	all = append(all, record.Medications...)
	all = append(all, record.Complications...)
	all = append(all, record.Examinations...)
	all = append(all, record.Consultations...)
	all = append(all, record.Imaging...)
	if record.Disposition != nil {
		all = append(all, *record.Disposition)
	}
	all = append(all, record.FollowUps...)
	return all
}

// nameOf returns the normalized name used to group an entity's new_event
// and reference mentions together, matching internal/merge's key logic.
func nameOf(e model.ExtractedEntity) string {
	switch v := e.Value.(type) {
	case model.ProcedureValue:
		return normalize(v.Name)
	case model.ComplicationValue:
		return normalize(v.Name)
	case model.MedicationValue:
		return normalize(v.Name)
	case model.ConsultationValue:
		return normalize(v.Service)
	case model.ImagingFindingValue:
		return normalize(v.Modality)
	case model.DischargeDispositionValue:
		return normalize(v.Disposition)
	case model.FollowUpValue:
		return normalize(v.Service)
	case model.ScoreValue:
		return normalize(v.Scale)
	case model.ExaminationFindingValue:
		return normalize(v.System + ":" + v.Finding)
	default:
		return ""
	}
}

// dateOf prefers the Temporal Analyzer's resolved date (POD resolution
// or an explicit date) over any date embedded directly in the value.
func dateOf(e model.ExtractedEntity) string {
	if e.TemporalContext.ResolvedDate != nil {
		return e.TemporalContext.ResolvedDate.Format("2006-01-02")
	}
	switch v := e.Value.(type) {
	case model.ProcedureValue:
		return v.Date
	case model.ComplicationValue:
		return v.Date
	case model.ConsultationValue:
		return v.Date
	case model.ImagingFindingValue:
		return v.Date
	default:
		return ""
	}
}

// describe renders a short human-readable label for a timeline event.
func describe(e model.ExtractedEntity) string {
	switch v := e.Value.(type) {
	case model.ProcedureValue:
		return v.Name
	case model.ComplicationValue:
		return v.Name
	case model.MedicationValue:
		return v.Name
	case model.ConsultationValue:
		return v.Service
	case model.ImagingFindingValue:
		return strings.TrimSpace(v.Modality + " " + v.Finding)
	case model.DischargeDispositionValue:
		return v.Disposition
	case model.FollowUpValue:
		return v.Service
	case model.ScoreValue:
		return v.Scale
	case model.ExaminationFindingValue:
		return v.System + ": " + v.Finding
	default:
		return ""
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
