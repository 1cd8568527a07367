package merge

import "github.com/ramihatou97/dcs-sub003/internal/model"

// mergeCollection implements spec.md §4.6's collection rule: union by
// normalized-name+date key, merging fields when the same key appears in
// both sources rather than picking one side wholesale.
func mergeCollection(pattern, llm []model.ExtractedEntity) []model.ExtractedEntity {
	byKey := make(map[model.NormalizedKey]model.ExtractedEntity, len(pattern)+len(llm))
	order := make([]model.NormalizedKey, 0, len(pattern)+len(llm))

	for _, e := range pattern {
		e.Origin = "pattern"
		k := normalizedKey(e)
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = e
	}
	for _, e := range llm {
		e.Origin = "llm"
		k := normalizedKey(e)
		if existing, ok := byKey[k]; ok {
			byKey[k] = mergeEntityPair(existing, e)
			continue
		}
		order = append(order, k)
		byKey[k] = e
	}

	out := make([]model.ExtractedEntity, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

// mergeEntityPair reconciles a pattern-sourced and llm-sourced entity
// that share a normalized key, filling blanks from one side with
// the other's value rather than discarding either.
func mergeEntityPair(a, b model.ExtractedEntity) model.ExtractedEntity {
	merged := a
	merged.Origin = "pattern+llm"
	if b.Confidence > a.Confidence {
		merged.Confidence = b.Confidence
	}
	merged.TemporalContext = mergeTemporalContext(a.TemporalContext, b.TemporalContext)
	merged.Value = mergeValues(a.Value, b.Value)
	return merged
}

func mergeValues(a, b model.EntityValue) model.EntityValue {
	switch av := a.(type) {
	case model.ProcedureValue:
		bv, _ := b.(model.ProcedureValue)
		if av.Date == "" {
			av.Date = bv.Date
		}
		if av.Raw == "" {
			av.Raw = bv.Raw
		}
		if av.Detail == "" {
			av.Detail = bv.Detail
		}
		return av
	case model.ComplicationValue:
		bv, _ := b.(model.ComplicationValue)
		if av.Date == "" {
			av.Date = bv.Date
		}
		if av.Raw == "" {
			av.Raw = bv.Raw
		}
		if av.Severity == "" {
			av.Severity = bv.Severity
		}
		return av
	case model.MedicationValue:
		bv, _ := b.(model.MedicationValue)
		if av.Category == "" {
			av.Category = bv.Category
		}
		if av.Dose == "" {
			av.Dose = bv.Dose
		}
		if av.Route == "" {
			av.Route = bv.Route
		}
		return av
	case model.ConsultationValue:
		bv, _ := b.(model.ConsultationValue)
		if av.Reason == "" {
			av.Reason = bv.Reason
		}
		if av.Date == "" {
			av.Date = bv.Date
		}
		return av
	case model.ImagingFindingValue:
		bv, _ := b.(model.ImagingFindingValue)
		if av.Finding == "" {
			av.Finding = bv.Finding
		}
		if av.Date == "" {
			av.Date = bv.Date
		}
		return av
	case model.DischargeDispositionValue:
		bv, _ := b.(model.DischargeDispositionValue)
		if av.Raw == "" {
			av.Raw = bv.Raw
		}
		return av
	case model.FollowUpValue:
		bv, _ := b.(model.FollowUpValue)
		if av.Timing == "" {
			av.Timing = bv.Timing
		}
		if av.Raw == "" {
			av.Raw = bv.Raw
		}
		return av
	default:
		return a
	}
}
