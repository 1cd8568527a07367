package model

import "encoding/json"

// entityEnvelope mirrors ExtractedEntity but types Value as raw JSON,
// since encoding/json cannot unmarshal directly into a non-empty
// interface. MarshalJSON needs no custom envelope (the concrete Value
// underneath marshals fine); UnmarshalJSON uses Kind to pick the
// concrete type to decode Value into.
type entityEnvelope struct {
	Kind            EntityKind      `json:"kind"`
	Value           json.RawMessage `json:"value"`
	SourceSpan      SourceSpan      `json:"sourceSpan"`
	Confidence      float64         `json:"confidence"`
	TemporalContext TemporalContext `json:"temporalContext"`
	Origin          string          `json:"origin"`
}

// UnmarshalJSON restores the concrete EntityValue behind the
// discriminated union, keyed by Kind (spec.md §3). Needed so cached
// and structured-response JSON round-trips through ExtractedEntity
// without losing the Value field to the interface's zero value.
func (e *ExtractedEntity) UnmarshalJSON(data []byte) error {
	var env entityEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	e.Kind = env.Kind
	e.SourceSpan = env.SourceSpan
	e.Confidence = env.Confidence
	e.TemporalContext = env.TemporalContext
	e.Origin = env.Origin

	if len(env.Value) == 0 || string(env.Value) == "null" {
		e.Value = nil
		return nil
	}

	value, err := decodeEntityValue(env.Kind, env.Value)
	if err != nil {
		return err
	}
	e.Value = value
	return nil
}

func decodeEntityValue(kind EntityKind, raw json.RawMessage) (EntityValue, error) {
	var err error
	switch kind {
	case EntityDemographic:
		var v DemographicValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityDate:
		var v DateValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityFunctionalScore:
		var v ScoreValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityProcedure:
		var v ProcedureValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityMedication:
		var v MedicationValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityComplication:
		var v ComplicationValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityExaminationFinding:
		var v ExaminationFindingValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityConsultation:
		var v ConsultationValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityImagingFinding:
		var v ImagingFindingValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityDischargeDisposition:
		var v DischargeDispositionValue
		err = json.Unmarshal(raw, &v)
		return v, err
	case EntityFollowUp:
		var v FollowUpValue
		err = json.Unmarshal(raw, &v)
		return v, err
	default:
		var v map[string]any
		err = json.Unmarshal(raw, &v)
		return nil, err
	}
}
