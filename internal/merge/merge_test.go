package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func scalar(kind model.EntityKind, value model.EntityValue, confidence float64) model.ExtractedEntity {
	return model.ExtractedEntity{Kind: kind, Value: value, Confidence: confidence}
}

func TestMerge_ScalarTieBreak_PrefersPatternOnEqualConfidence(t *testing.T) {
	pattern := model.PartialExtraction{
		Scalars: []model.ExtractedEntity{scalar(model.EntityDemographic, model.DemographicValue{Field: "mrn", Raw: "1234567"}, 0.95)},
	}
	llm := model.PartialExtraction{
		Scalars: []model.ExtractedEntity{scalar(model.EntityDemographic, model.DemographicValue{Field: "mrn", Raw: "9999999"}, 0.95)},
	}

	record := New().Merge(pattern, llm)

	assert.Equal(t, "1234567", record.Demographics.MRN)
	require.Len(t, record.AuditDisagreements, 1)
	assert.Equal(t, "pattern preferred on tie", record.AuditDisagreements[0].Reason)
}

func TestMerge_ScalarTieBreak_HigherConfidenceWins(t *testing.T) {
	pattern := model.PartialExtraction{
		Scalars: []model.ExtractedEntity{scalar(model.EntityDemographic, model.DemographicValue{Field: "gender", Raw: "male"}, 0.70)},
	}
	llm := model.PartialExtraction{
		Scalars: []model.ExtractedEntity{scalar(model.EntityDemographic, model.DemographicValue{Field: "gender", Raw: "female"}, 0.75)},
	}

	record := New().Merge(pattern, llm)

	assert.Equal(t, "female", record.Demographics.Gender)
	require.Len(t, record.AuditDisagreements, 1)
	assert.Equal(t, "llm higher confidence", record.AuditDisagreements[0].Reason)
}

func TestMerge_ScalarAgreement_NoDisagreementRecorded(t *testing.T) {
	pattern := model.PartialExtraction{
		Scalars: []model.ExtractedEntity{scalar(model.EntityDate, model.DateValue{Field: "admission", ISO: "2026-01-01"}, 0.95)},
	}
	llm := model.PartialExtraction{
		Scalars: []model.ExtractedEntity{scalar(model.EntityDate, model.DateValue{Field: "admission", ISO: "2026-01-01"}, 0.75)},
	}

	record := New().Merge(pattern, llm)

	assert.Equal(t, "2026-01-01", record.Dates.Admission)
	assert.Empty(t, record.AuditDisagreements)
}

func TestMerge_CollectionUnion_DistinctKeysBothSurvive(t *testing.T) {
	pattern := model.PartialExtraction{
		Procedures: []model.ExtractedEntity{scalar(model.EntityProcedure, model.ProcedureValue{Name: "craniotomy", Date: "2026-01-02"}, 0.85)},
	}
	llm := model.PartialExtraction{
		Procedures: []model.ExtractedEntity{scalar(model.EntityProcedure, model.ProcedureValue{Name: "coiling", Date: "2026-01-03"}, 0.75)},
	}

	record := New().Merge(pattern, llm)

	require.Len(t, record.Procedures, 2)
}

func TestMerge_CollectionUnion_SameKeyFieldsCombined(t *testing.T) {
	pattern := model.PartialExtraction{
		Complications: []model.ExtractedEntity{scalar(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-05"}, 0.85)},
	}
	llm := model.PartialExtraction{
		Complications: []model.ExtractedEntity{scalar(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-05", Severity: "moderate"}, 0.75)},
	}

	record := New().Merge(pattern, llm)

	require.Len(t, record.Complications, 1)
	cv := record.Complications[0].Value.(model.ComplicationValue)
	assert.Equal(t, "moderate", cv.Severity)
	assert.Equal(t, "pattern+llm", record.Complications[0].Origin)
}

func TestMerge_TemporalContext_ReferenceSticksUnlessHigherConfidenceNewEvent(t *testing.T) {
	patternTC := model.TemporalContext{Kind: model.KindReference, Confidence: 0.85}
	llmTC := model.TemporalContext{Kind: model.KindNewEvent, Confidence: 0.70}

	merged := mergeTemporalContext(patternTC, llmTC)
	assert.Equal(t, model.KindReference, merged.Kind, "lower-confidence new_event must not override reference")

	llmTCHigher := model.TemporalContext{Kind: model.KindNewEvent, Confidence: 0.95}
	merged2 := mergeTemporalContext(patternTC, llmTCHigher)
	assert.Equal(t, model.KindNewEvent, merged2.Kind, "higher-confidence new_event overrides reference")
}

func TestMerge_Disposition_PointerWhenPresent(t *testing.T) {
	pattern := model.PartialExtraction{
		Disposition: []model.ExtractedEntity{scalar(model.EntityDischargeDisposition, model.DischargeDispositionValue{Disposition: "rehab"}, 0.70)},
	}

	record := New().Merge(pattern, model.PartialExtraction{})

	require.NotNil(t, record.Disposition)
	dv := record.Disposition.Value.(model.DischargeDispositionValue)
	assert.Equal(t, "rehab", dv.Disposition)
}

func TestMerge_SuggestionsAndWarningsPassThroughFromLLM(t *testing.T) {
	llm := model.PartialExtraction{
		Suggestions:        []string{"DOB missing"},
		ValidationWarnings: []string{"age 140 implausible"},
	}

	record := New().Merge(model.PartialExtraction{}, llm)

	assert.Equal(t, []string{"DOB missing"}, record.Suggestions)
	assert.Equal(t, []string{"age 140 implausible"}, record.ValidationWarnings)
}
