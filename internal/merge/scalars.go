package merge

import (
	"strconv"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

type scalarKey struct {
	kind  model.EntityKind
	field string
}

func scalarField(e model.ExtractedEntity) string {
	switch v := e.Value.(type) {
	case model.DemographicValue:
		return v.Field
	case model.DateValue:
		return v.Field
	default:
		return ""
	}
}

func scalarRaw(e model.ExtractedEntity) string {
	switch v := e.Value.(type) {
	case model.DemographicValue:
		return v.Raw
	case model.DateValue:
		return v.ISO
	default:
		return ""
	}
}

// mergeScalars implements spec.md §4.6's scalar rule: choose the higher
// confidence value, breaking ties toward pattern (deterministic), and
// recording a Disagreement whenever the two sources' raw values differ.
func mergeScalars(pattern, llm []model.ExtractedEntity) ([]model.ExtractedEntity, []model.Disagreement) {
	byKey := make(map[scalarKey]model.ExtractedEntity, len(pattern)+len(llm))
	order := make([]scalarKey, 0, len(pattern)+len(llm))
	var disagreements []model.Disagreement

	for _, e := range pattern {
		e.Origin = "pattern"
		k := scalarKey{e.Kind, scalarField(e)}
		if _, ok := byKey[k]; !ok {
			order = append(order, k)
		}
		byKey[k] = e
	}

	for _, e := range llm {
		e.Origin = "llm"
		k := scalarKey{e.Kind, scalarField(e)}
		existing, ok := byKey[k]
		if !ok {
			order = append(order, k)
			byKey[k] = e
			continue
		}
		if scalarRaw(existing) == scalarRaw(e) {
			continue
		}

		chosen := existing
		reason := "pattern preferred on tie"
		switch {
		case e.Confidence > existing.Confidence:
			chosen = e
			reason = "llm higher confidence"
		case existing.Confidence > e.Confidence:
			reason = "pattern higher confidence"
		}
		chosen.Origin = "pattern+llm"
		byKey[k] = chosen

		disagreements = append(disagreements, model.Disagreement{
			Field:        k.field,
			PatternValue: scalarRaw(existing),
			LLMValue:     scalarRaw(e),
			Chosen:       scalarRaw(chosen),
			Reason:       reason,
		})
	}

	out := make([]model.ExtractedEntity, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out, disagreements
}

// splitScalars converts the merged scalar entity list back into the
// Demographics/Dates structs the external ExtractionRecord exposes.
func splitScalars(scalars []model.ExtractedEntity) (model.Demographics, model.Dates) {
	var d model.Demographics
	var dt model.Dates

	for _, e := range scalars {
		switch v := e.Value.(type) {
		case model.DemographicValue:
			switch v.Field {
			case "name":
				d.Name = v.Raw
			case "mrn":
				d.MRN = v.Raw
			case "dob":
				d.DOB = v.Raw
			case "age":
				if n, err := strconv.Atoi(v.Raw); err == nil {
					d.Age = &n
				}
			case "gender":
				d.Gender = v.Raw
			case "attending":
				d.Attending = v.Raw
			}
		case model.DateValue:
			switch v.Field {
			case "admission":
				dt.Admission = v.ISO
			case "surgery":
				dt.Surgery = append(dt.Surgery, v.ISO)
			case "discharge":
				dt.Discharge = v.ISO
			case "ictus":
				dt.Ictus = v.ISO
			}
		}
	}
	return d, dt
}
