package quality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func completeRecord() model.ExtractionRecord {
	record := model.NewExtractionRecord()
	record.Demographics = model.Demographics{Name: "Jane Doe", MRN: "1234567"}
	record.Dates = model.Dates{Admission: "2026-01-01", Discharge: "2026-01-10", Surgery: []string{"2026-01-02"}}
	record.Procedures = []model.ExtractedEntity{{Kind: model.EntityProcedure, Value: model.ProcedureValue{Name: "craniotomy", Date: "2026-01-02"}}}
	record.Complications = []model.ExtractedEntity{{Kind: model.EntityComplication, Value: model.ComplicationValue{Name: "vasospasm", Date: "2026-01-05"}}}
	record.Medications = []model.ExtractedEntity{{Kind: model.EntityMedication, Value: model.MedicationValue{Name: "nimodipine", Category: "calcium channel blocker"}}}
	return record
}

func completeNarrative() model.NarrativeSection {
	return model.NarrativeSection{
		ChiefComplaint:          "Severe headache and neck stiffness.",
		HistoryOfPresentIllness: "Patient presented with sudden onset headache.",
		HospitalCourse:          "The patient underwent craniotomy on 2026-01-02. Subsequently, vasospasm developed and was treated. The patient then improved steadily over several days before discharge home.",
		Procedures:              "Craniotomy performed on 2026-01-02.",
		Complications:           "Vasospasm occurred on 2026-01-05 and was treated with nimodipine.",
		Consultations:           "Neurosurgery followed throughout admission.",
		DischargeStatus:         "Stable at discharge.",
		DischargeMedications:    "Nimodipine.",
		DischargeDisposition:    "home",
		FollowUpPlan:            "Follow up with neurosurgery in two weeks.",
	}
}

func TestScore_CompleteRecord_ScoresHighAndNotIncomplete(t *testing.T) {
	report := New().Score(completeRecord(), completeNarrative(), time.Second, 10*time.Second)

	assert.False(t, report.Incomplete)
	assert.Greater(t, report.Overall, 0.7)
}

func TestScore_MissingCriticalSection_MarksIncomplete(t *testing.T) {
	narrative := completeNarrative()
	narrative.HospitalCourse = ""

	report := New().Score(completeRecord(), narrative, time.Second, 10*time.Second)

	require.True(t, report.Incomplete)
	require.NotEmpty(t, report.Issues)
	assert.Equal(t, model.SeverityCritical, report.Issues[0].Severity, "critical issues must sort first")
}

func TestScore_EntityNotInNarrative_LowersAccuracy(t *testing.T) {
	record := completeRecord()
	record.Procedures = append(record.Procedures, model.ExtractedEntity{Kind: model.EntityProcedure, Value: model.ProcedureValue{Name: "ventriculostomy", Date: "2026-01-03"}})

	report := New().Score(record, completeNarrative(), time.Second, 10*time.Second)

	accuracy := report.Dimensions[model.DimensionAccuracy]
	assert.Less(t, accuracy.Score, 1.0)
}

func TestScore_DateContradiction_LowersConsistency(t *testing.T) {
	record := completeRecord()
	record.Dates.Discharge = "2025-12-31"

	report := New().Score(record, completeNarrative(), time.Second, 10*time.Second)

	consistency := report.Dimensions[model.DimensionConsistency]
	assert.Less(t, consistency.Score, 1.0)
}

func TestScore_SlowProcessing_LowersTimeliness(t *testing.T) {
	report := New().Score(completeRecord(), completeNarrative(), 30*time.Second, 10*time.Second)

	timeliness := report.Dimensions[model.DimensionTimeliness]
	assert.Less(t, timeliness.Score, 1.0)
}

func TestScore_RepeatedCalls_IssueOrderAndOverallAreDeterministic(t *testing.T) {
	record := completeRecord()
	record.Demographics = model.Demographics{}
	record.Dates.Admission = ""
	record.Dates.Discharge = "2025-12-31"

	narrative := completeNarrative()

	first := New().Score(record, narrative, time.Second, 10*time.Second)
	require.True(t, len(first.Issues) > 1, "test needs at least two issues to exercise ordering")

	for i := 0; i < 20; i++ {
		again := New().Score(record, narrative, time.Second, 10*time.Second)
		require.Equal(t, first.Overall, again.Overall)
		require.Equal(t, len(first.Issues), len(again.Issues))
		for j := range first.Issues {
			assert.Equal(t, first.Issues[j], again.Issues[j], "issue %d must be identical and identically ordered across repeated calls", j)
		}
	}
}

func TestLowestScoringDimension_PicksMinimum(t *testing.T) {
	record := completeRecord()
	record.Demographics = model.Demographics{}
	record.Dates.Admission = ""
	record.Dates.Discharge = ""

	report := New().Score(record, completeNarrative(), time.Second, 10*time.Second)

	worst := LowestScoringDimension(report)
	assert.Equal(t, model.DimensionCompleteness, worst)
}
