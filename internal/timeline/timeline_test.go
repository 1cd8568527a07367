package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func d(iso string) time.Time {
	t, err := time.Parse(isoLayout, iso)
	if err != nil {
		panic(err)
	}
	return t
}

func newEvent(kind model.EntityKind, value model.EntityValue, pod *int) model.ExtractedEntity {
	return model.ExtractedEntity{
		Kind:            kind,
		Value:           value,
		Confidence:      0.85,
		TemporalContext: model.TemporalContext{Kind: model.KindNewEvent, POD: pod},
	}
}

func reference(kind model.EntityKind, value model.EntityValue) model.ExtractedEntity {
	return model.ExtractedEntity{
		Kind:            kind,
		Value:           value,
		Confidence:      0.85,
		TemporalContext: model.TemporalContext{Kind: model.KindReference},
	}
}

func TestBuild_SortsByDateAndSinksUnknownToEnd(t *testing.T) {
	record := model.ExtractionRecord{
		Procedures: []model.ExtractedEntity{
			newEvent(model.EntityProcedure, model.ProcedureValue{Name: "craniotomy", Date: "2026-01-05"}, nil),
			newEvent(model.EntityProcedure, model.ProcedureValue{Name: "EVD placement"}, nil),
		},
		Complications: []model.ExtractedEntity{
			newEvent(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-02"}, nil),
		},
	}

	tl := New().Build(record, model.AnchorDates{})

	require.Len(t, tl.Events, 3)
	assert.Equal(t, "2026-01-02", tl.Events[0].Date)
	assert.Equal(t, "2026-01-05", tl.Events[1].Date)
	assert.Equal(t, "", tl.Events[2].Date, "unknown-date event must sink to the end")
}

func TestBuild_ReferenceLinksToNearestPrecedingNewEvent(t *testing.T) {
	record := model.ExtractionRecord{
		Complications: []model.ExtractedEntity{
			newEvent(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-02"}, nil),
			reference(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-06"}),
		},
	}

	tl := New().Build(record, model.AnchorDates{})

	require.Len(t, tl.Events, 1)
	require.Len(t, tl.Events[0].Relationships, 1)
	assert.Equal(t, "vasospasm", tl.Events[0].Relationships[0].Name)
	assert.Equal(t, 1, tl.ReferenceCount)
}

func TestBuild_ReferenceCountEqualsTotalMentionsMinusNewEvents(t *testing.T) {
	record := model.ExtractionRecord{
		Medications: []model.ExtractedEntity{
			newEvent(model.EntityMedication, model.MedicationValue{Name: "nimodipine"}, nil),
			reference(model.EntityMedication, model.MedicationValue{Name: "nimodipine"}),
			reference(model.EntityMedication, model.MedicationValue{Name: "nimodipine"}),
		},
	}

	tl := New().Build(record, model.AnchorDates{})

	assert.Equal(t, 1, len(tl.Events))
	assert.Equal(t, 2, tl.ReferenceCount)
}

func TestBuild_InfersAdmissionAndDischargeFromEvents(t *testing.T) {
	record := model.ExtractionRecord{
		Procedures: []model.ExtractedEntity{
			newEvent(model.EntityProcedure, model.ProcedureValue{Name: "craniotomy", Date: "2026-01-02"}, nil),
		},
		Complications: []model.ExtractedEntity{
			newEvent(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-08"}, nil),
		},
	}

	tl := New().Build(record, model.AnchorDates{})

	require.Len(t, tl.Events, 2)
	for _, e := range tl.Events {
		require.NotNil(t, e.DaysSinceAdmission)
	}
	assert.Equal(t, 0, *tl.Events[0].DaysSinceAdmission)
	assert.Equal(t, 6, *tl.Events[1].DaysSinceAdmission)
}

func TestBuild_RelationClassification(t *testing.T) {
	anchors := model.AnchorDates{
		Admission: ptr(d("2026-01-01")),
		Surgeries: []time.Time{d("2026-01-03")},
	}
	record := model.ExtractionRecord{
		Procedures: []model.ExtractedEntity{
			newEvent(model.EntityProcedure, model.ProcedureValue{Name: "craniotomy", Date: "2026-01-03"}, nil),
		},
		Complications: []model.ExtractedEntity{
			newEvent(model.EntityComplication, model.ComplicationValue{Name: "fever", Date: "2025-12-30"}, nil),
			newEvent(model.EntityComplication, model.ComplicationValue{Name: "vasospasm", Date: "2026-01-02"}, nil),
			newEvent(model.EntityComplication, model.ComplicationValue{Name: "seizure", Date: "2026-01-06"}, nil),
		},
	}

	tl := New().Build(record, anchors)

	byDesc := map[string]model.TimelineEvent{}
	for _, e := range tl.Events {
		byDesc[e.Description] = e
	}

	assert.Equal(t, model.RelationPreAdmission, byDesc["fever"].Relation)
	assert.Equal(t, model.RelationPreOp, byDesc["vasospasm"].Relation)
	assert.Equal(t, model.RelationIntraOp, byDesc["craniotomy"].Relation)
	assert.Equal(t, model.RelationPostOp, byDesc["seizure"].Relation)
}

func ptr(t time.Time) *time.Time { return &t }
