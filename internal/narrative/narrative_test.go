package narrative

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func sampleRecord() model.ExtractionRecord {
	record := model.NewExtractionRecord()
	record.Demographics = model.Demographics{Name: "Jane Doe", MRN: "1234567", Attending: "Dr. Smith"}
	record.Procedures = []model.ExtractedEntity{{
		Kind:  model.EntityProcedure,
		Value: model.ProcedureValue{Name: "craniotomy", Date: "2026-01-02"},
	}}
	record.Complications = []model.ExtractedEntity{{
		Kind:  model.EntityComplication,
		Value: model.ComplicationValue{Name: "vasospasm", Date: "2026-01-05", Severity: "moderate"},
	}}
	disposition := model.ExtractedEntity{Kind: model.EntityDischargeDisposition, Value: model.DischargeDispositionValue{Disposition: "home"}}
	record.Disposition = &disposition
	record.FollowUps = []model.ExtractedEntity{{
		Kind:  model.EntityFollowUp,
		Value: model.FollowUpValue{Service: "neurosurgery", Timing: "2 weeks"},
	}}
	return record
}

func sampleTimeline() model.Timeline {
	return model.Timeline{
		Events: []model.TimelineEvent{
			{Date: "2026-01-02", Description: "craniotomy", Relation: model.RelationIntraOp},
			{Date: "2026-01-05", Description: "vasospasm", Relation: model.RelationPostOp},
		},
		ReferenceCount: 0,
	}
}

func TestGenerate_Deterministic_UsesTemplateMode(t *testing.T) {
	g := New(config.ProvidersConfig{})
	out := g.Generate(context.Background(), sampleRecord(), sampleTimeline(), true)

	assert.Equal(t, "template", out.Mode)
	assert.Contains(t, out.Section.HospitalCourse, "craniotomy")
	assert.Contains(t, out.Section.Complications, "vasospasm")
	assert.Equal(t, "home", out.Section.DischargeDisposition)
}

func TestGenerate_UnusableLadder_FallsBackToTemplate(t *testing.T) {
	g := New(config.ProvidersConfig{Ladder: []config.ProviderConfig{{Name: "unknown", Kind: "nope"}}})
	out := g.Generate(context.Background(), sampleRecord(), sampleTimeline(), false)

	assert.Equal(t, "template", out.Mode)
	assert.NotEmpty(t, out.Section.DischargeDisposition)
}

func TestGenerate_MockProvider_ParsesSections(t *testing.T) {
	g := New(config.ProvidersConfig{Ladder: []config.ProviderConfig{{Name: "mock", Kind: "mock"}}})
	out := g.Generate(context.Background(), sampleRecord(), sampleTimeline(), false)

	require.Equal(t, "llm", out.Mode)
	assert.Equal(t, "mock", out.Provider)
}

func TestRenderTemplate_AllSectionsNonEmpty(t *testing.T) {
	section := renderTemplate(sampleRecord(), sampleTimeline())

	for _, key := range model.AllSectionKeys {
		assert.NotEmpty(t, section.Get(key), "section %s should not be empty in template mode", key)
	}
}

func TestGenerateSection_CompletesSingleSection(t *testing.T) {
	g := New(config.ProvidersConfig{})
	text, err := g.GenerateSection(context.Background(), model.SectionDischargeDisposition, sampleRecord(), sampleTimeline())

	require.NoError(t, err)
	assert.Contains(t, text, "home")
}
