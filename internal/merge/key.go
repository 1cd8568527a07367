package merge

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// normalizedKey computes the (normalized-name, date) identity spec.md
// §3/§4.6 uses to union collections from both extraction sources.
func normalizedKey(e model.ExtractedEntity) model.NormalizedKey {
	switch v := e.Value.(type) {
	case model.ProcedureValue:
		return model.NormalizedKey{Name: normalizeName(v.Name), Date: v.Date}
	case model.ComplicationValue:
		return model.NormalizedKey{Name: normalizeName(v.Name), Date: v.Date}
	case model.MedicationValue:
		return model.NormalizedKey{Name: normalizeName(v.Name)}
	case model.ConsultationValue:
		return model.NormalizedKey{Name: normalizeName(v.Service), Date: v.Date}
	case model.ImagingFindingValue:
		return model.NormalizedKey{Name: normalizeName(v.Modality), Date: v.Date}
	case model.DischargeDispositionValue:
		return model.NormalizedKey{Name: normalizeName(v.Disposition)}
	case model.FollowUpValue:
		return model.NormalizedKey{Name: normalizeName(v.Service)}
	case model.ScoreValue:
		return model.NormalizedKey{Name: normalizeName(v.Scale)}
	case model.ExaminationFindingValue:
		return model.NormalizedKey{Name: normalizeName(v.System + ":" + v.Finding)}
	default:
		return model.NormalizedKey{}
	}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
