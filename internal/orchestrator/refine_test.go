package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/narrative"
)

func TestSectionsToRegenerate_CompletenessTargetsEmptySections(t *testing.T) {
	report := model.QualityReport{
		Dimensions: map[model.DimensionName]model.DimensionScore{
			model.DimensionCompleteness: {
				Issues: []model.Issue{
					{Code: "CRITICAL_SECTION_EMPTY", Message: "chiefComplaint is empty"},
					{Code: "SECTION_EMPTY", Message: "followUpPlan is empty"},
					{Code: "MISSING_REQUIRED_FIELD", Message: "MRN was not resolved"},
				},
			},
		},
	}
	keys := sectionsToRegenerate(model.DimensionCompleteness, report)
	assert.Equal(t, []model.SectionKey{model.SectionChiefComplaint, model.SectionFollowUpPlan}, keys)
}

func TestSectionsToRegenerate_TimelinessHasNoTarget(t *testing.T) {
	keys := sectionsToRegenerate(model.DimensionTimeliness, model.QualityReport{})
	assert.Nil(t, keys)
}

func TestSectionsToRegenerate_AccuracyFallsBackToHospitalCourse(t *testing.T) {
	keys := sectionsToRegenerate(model.DimensionAccuracy, model.QualityReport{})
	assert.Equal(t, []model.SectionKey{model.SectionHospitalCourse}, keys)
}

func TestRefine_StopsImmediatelyWhenThresholdAlreadyMet(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	report := model.QualityReport{Overall: 0.99}
	outcome := narrative.Outcome{Mode: "template"}
	cfg := config.PipelineConfig{QualityThreshold: 0.85, MaxRefinementIterations: 2}

	_, _, iterations := o.refine(context.Background(), narrative.New(config.ProvidersConfig{}), model.ExtractionRecord{}, model.Timeline{}, report, outcome, cfg, time.Second, time.Now())
	assert.Equal(t, 0, iterations)
}

func TestRefine_StopsWhenNoTargetableSectionForLowestDimension(t *testing.T) {
	o, err := New(testConfig())
	require.NoError(t, err)
	defer o.Close()

	report := model.QualityReport{
		Overall: 0.5,
		Dimensions: map[model.DimensionName]model.DimensionScore{
			model.DimensionTimeliness: {Score: 0.1},
		},
	}
	outcome := narrative.Outcome{Mode: "template"}
	cfg := config.PipelineConfig{QualityThreshold: 0.85, MaxRefinementIterations: 2}

	_, _, iterations := o.refine(context.Background(), narrative.New(config.ProvidersConfig{}), model.ExtractionRecord{}, model.Timeline{}, report, outcome, cfg, time.Second, time.Now())
	assert.Equal(t, 0, iterations)
}
