package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func mustExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := New(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return e
}

func note(text string) model.NormalizedNote {
	return model.NormalizedNote{Text: text, SourceIndex: 0}
}

func TestExtract_Demographics(t *testing.T) {
	e := mustExtractor(t)
	n := note("Patient Name: Jane Doe. MRN: 1234567. DOB: 1960-05-02. 65 yo female. Attending: Dr. Smith.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	fields := map[string]string{}
	for _, ent := range result.Scalars {
		if dv, ok := ent.Value.(model.DemographicValue); ok {
			fields[dv.Field] = dv.Raw
		}
	}
	assert.Equal(t, "1234567", fields["mrn"])
	assert.Equal(t, "65", fields["age"])
	assert.Equal(t, "female", fields["gender"])
}

func TestExtract_Scores_HuntHessAndFisherDisjoint(t *testing.T) {
	e := mustExtractor(t)
	n := note("Hunt-Hess grade III SAH. Modified Fisher 3 on admission CT.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	scales := map[string]float64{}
	for _, ent := range result.Scores {
		sv := ent.Value.(model.ScoreValue)
		scales[sv.Scale] = sv.Value
	}
	require.Contains(t, scales, "huntHess")
	assert.Equal(t, float64(3), scales["huntHess"])
	require.Contains(t, scales, "modifiedFisher")
	_, plainFisherPresent := scales["fisher"]
	assert.False(t, plainFisherPresent, "a modified Fisher mention must not also register as plain fisher")
}

func TestExtract_Complications_NegationSuppressed(t *testing.T) {
	e := mustExtractor(t)
	n := note("No evidence of vasospasm on TCD. Patient denies headache.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	assert.Empty(t, result.Complications, "negated complication mentions must not be extracted")
}

func TestExtract_Complications_PositiveMatch(t *testing.T) {
	e := mustExtractor(t)
	n := note("Course complicated by vasospasm requiring treatment.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	require.Len(t, result.Complications, 1)
	cv := result.Complications[0].Value.(model.ComplicationValue)
	assert.Equal(t, "vasospasm", cv.Name)
}

func TestExtract_Procedures_POD(t *testing.T) {
	e := mustExtractor(t)
	surgery := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	n := note("POD#2 the patient underwent craniotomy for clot evacuation.")
	anchors := model.AnchorDates{Surgeries: []time.Time{surgery}}

	result := e.Extract([]model.NormalizedNote{n}, anchors)

	require.NotEmpty(t, result.Procedures)
	found := false
	for _, ent := range result.Procedures {
		pv := ent.Value.(model.ProcedureValue)
		if pv.Name == "craniotomy" {
			found = true
			require.NotNil(t, ent.TemporalContext.ResolvedDate)
			assert.Equal(t, surgery.AddDate(0, 0, 2), *ent.TemporalContext.ResolvedDate)
		}
	}
	assert.True(t, found)
}

func TestExtract_Medications(t *testing.T) {
	e := mustExtractor(t)
	n := note("Continued on heparin for DVT prophylaxis and levetiracetam for seizure prophylaxis.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	categories := map[string]string{}
	for _, ent := range result.Medications {
		mv := ent.Value.(model.MedicationValue)
		categories[mv.Name] = mv.Category
	}
	assert.Equal(t, "anticoagulation", categories["heparin"])
	assert.Equal(t, "AED", categories["levetiracetam"])
}

func TestExtract_Imaging(t *testing.T) {
	e := mustExtractor(t)
	n := note("CT head on 2026-01-11 showed no new hemorrhage.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	require.NotEmpty(t, result.Imaging)
	iv := result.Imaging[0].Value.(model.ImagingFindingValue)
	assert.Equal(t, "CT", iv.Modality)
	assert.Equal(t, "2026-01-11", iv.Date)
}

func TestExtract_Consultations(t *testing.T) {
	e := mustExtractor(t)
	n := note("Physical therapy consult for mobility assessment.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	require.NotEmpty(t, result.Consultations)
	cv := result.Consultations[0].Value.(model.ConsultationValue)
	assert.Contains(t, cv.Service, "Physical")
}

func TestExtract_Disposition(t *testing.T) {
	e := mustExtractor(t)
	n := note("Patient discharged to acute rehab in stable condition.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	require.Len(t, result.Disposition, 1)
	dv := result.Disposition[0].Value.(model.DischargeDispositionValue)
	assert.Equal(t, "rehab", dv.Disposition)
}

func TestExtract_FollowUps(t *testing.T) {
	e := mustExtractor(t)
	n := note("Follow up with neurosurgery clinic in 2 weeks.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	require.Len(t, result.FollowUps, 1)
	fv := result.FollowUps[0].Value.(model.FollowUpValue)
	assert.Contains(t, fv.Service, "neurosurgery")
	assert.Equal(t, "2 weeks", fv.Timing)
}

func TestExtract_ScoreRangeValidation_RejectsOutOfRange(t *testing.T) {
	e := mustExtractor(t)
	// GCS is 3-15; 27 should be rejected by range validation.
	n := note("GCS 27 on exam.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	for _, ent := range result.Scores {
		sv := ent.Value.(model.ScoreValue)
		assert.NotEqual(t, "gcsTotal", sv.Scale)
	}
}

func TestExtract_FunctionalScores_ComputedFromPTNoteWhenNoExplicitScore(t *testing.T) {
	e := mustExtractor(t)
	n := note("PT Note: patient ambulates short distances with assistance, requires minimal assistance for transfers.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	scales := map[string]model.ScoreValue{}
	for _, ent := range result.Scores {
		sv := ent.Value.(model.ScoreValue)
		scales[sv.Scale] = sv
	}
	for _, scale := range []string{"kps", "ecog", "mrs"} {
		require.Contains(t, scales, scale)
		assert.True(t, scales[scale].Computed, "%s should be flagged as computed", scale)
	}
	assert.Equal(t, float64(70), scales["kps"].Value)
	assert.Equal(t, float64(2), scales["ecog"].Value)
}

func TestExtract_FunctionalScores_ExplicitScoreSuppressesInference(t *testing.T) {
	e := mustExtractor(t)
	n := note("KPS 90 documented on admission. PT Note: patient bedbound, total assist for all transfers.")

	result := e.Extract([]model.NormalizedNote{n}, model.AnchorDates{})

	for _, ent := range result.Scores {
		sv := ent.Value.(model.ScoreValue)
		if sv.Scale == "kps" {
			assert.Equal(t, float64(90), sv.Value)
			assert.False(t, sv.Computed, "an explicit KPS must never be overwritten by an inferred one")
		}
	}
}
