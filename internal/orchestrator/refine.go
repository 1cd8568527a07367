package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/config"
	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/narrative"
	"github.com/ramihatou97/dcs-sub003/internal/quality"
)

// fallbackSectionFor maps a dimension to the section whose regeneration
// is most likely to move that dimension's score, for dimensions with no
// per-section issue to target directly (spec.md §4.11 refinement loop:
// "targeted re-generation on the lowest-scoring dimension"). Timeliness
// has no entry: no amount of section regeneration makes a request
// faster, so it never drives a refinement pass.
var fallbackSectionFor = map[model.DimensionName]model.SectionKey{
	model.DimensionAccuracy:         model.SectionHospitalCourse,
	model.DimensionConsistency:      model.SectionHospitalCourse,
	model.DimensionNarrativeQuality: model.SectionHospitalCourse,
	model.DimensionSpecificity:      model.SectionHospitalCourse,
}

// sectionsToRegenerate picks which narrative sections a refinement pass
// should rewrite for the given lowest-scoring dimension. For
// completeness it targets every section an issue named as empty;
// otherwise it falls back to a fixed representative section.
func sectionsToRegenerate(dimension model.DimensionName, report model.QualityReport) []model.SectionKey {
	if dimension != model.DimensionCompleteness {
		if key, ok := fallbackSectionFor[dimension]; ok {
			return []model.SectionKey{key}
		}
		return nil
	}

	var keys []model.SectionKey
	for _, issue := range report.Dimensions[dimension].Issues {
		if issue.Code != "SECTION_EMPTY" && issue.Code != "CRITICAL_SECTION_EMPTY" {
			continue
		}
		for _, k := range model.AllSectionKeys {
			if strings.HasPrefix(issue.Message, string(k)+" is empty") {
				keys = append(keys, k)
				break
			}
		}
	}
	return keys
}

// refine runs the bounded refinement loop (spec.md §4.11): while the
// overall score is below threshold and the iteration budget remains,
// it regenerates the lowest-scoring dimension's section(s) and
// rescores. It stops as soon as the threshold is met, the iteration
// budget is exhausted, or a pass produces no candidate section to
// regenerate.
func (o *Orchestrator) refine(
	ctx context.Context,
	gen *narrative.Generator,
	record model.ExtractionRecord,
	tl model.Timeline,
	report model.QualityReport,
	outcome narrative.Outcome,
	cfg config.PipelineConfig,
	target time.Duration,
	start time.Time,
) (model.QualityReport, narrative.Outcome, int) {
	iterations := 0
	for iterations < cfg.MaxRefinementIterations && report.Overall < cfg.QualityThreshold {
		worst := quality.LowestScoringDimension(report)
		keys := sectionsToRegenerate(worst, report)
		if len(keys) == 0 {
			log.Infow("refinement stopped, no targetable section for lowest dimension", "dimension", worst)
			break
		}

		section := outcome.Section
		regenerated := false
		for _, key := range keys {
			text, err := gen.GenerateSection(ctx, key, record, tl)
			if err != nil {
				log.Warnw("refinement section regeneration failed", "dimension", worst, "section", key, "error", err)
				continue
			}
			section = section.Set(key, text)
			regenerated = true
		}
		if !regenerated {
			break
		}

		outcome.Section = section
		iterations++
		report = o.quality.Score(record, section, time.Since(start), target)
		log.Infow("refinement iteration complete", "iteration", iterations, "dimension", worst, "overall", report.Overall)
	}
	return report, outcome, iterations
}
