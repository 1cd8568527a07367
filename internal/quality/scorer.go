// Package quality implements the Quality Scorer (spec.md §4.10): six
// weighted dimensions producing an overall rating, a severity-sorted
// issue list, and an incomplete flag when a critical section never got
// filled.
package quality

import (
	"sort"
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("quality")

// dimensionOrder fixes the iteration order for every pass over
// dims below, so the weighted sum and issue ordering are reproducible
// across identical-input calls (spec.md §8): ranging over the dims map
// directly would pick Go's randomized map order instead.
var dimensionOrder = []model.DimensionName{
	model.DimensionCompleteness,
	model.DimensionAccuracy,
	model.DimensionConsistency,
	model.DimensionNarrativeQuality,
	model.DimensionSpecificity,
	model.DimensionTimeliness,
}

// Scorer holds no state; every request is scored independently.
type Scorer struct{}

// New returns a Scorer.
func New() *Scorer { return &Scorer{} }

// Score evaluates one ExtractionRecord/NarrativeSection pair.
// processingTime/target feed the Timeliness dimension; pass target<=0
// to skip it (scores 1.0, no target configured for this run).
func (s *Scorer) Score(record model.ExtractionRecord, narrative model.NarrativeSection, processingTime, target time.Duration) model.QualityReport {
	dims := map[model.DimensionName]model.DimensionScore{
		model.DimensionCompleteness:      scoreCompleteness(record, narrative),
		model.DimensionAccuracy:          scoreAccuracy(record, narrative),
		model.DimensionConsistency:       scoreConsistency(record, narrative),
		model.DimensionNarrativeQuality:  scoreNarrativeQuality(narrative),
		model.DimensionSpecificity:       scoreSpecificity(record, narrative),
		model.DimensionTimeliness:        scoreTimeliness(processingTime, target),
	}

	var overall float64
	var issues []model.Issue
	for _, name := range dimensionOrder {
		d := dims[name]
		overall += d.Score * model.DimensionWeights[name]
		issues = append(issues, d.Issues...)
	}

	incomplete := false
	for _, iss := range dims[model.DimensionCompleteness].Issues {
		if iss.Code == "CRITICAL_SECTION_EMPTY" {
			incomplete = true
		}
	}

	// An entity that carries POD notation but no resolved date had no
	// surgery anchor to count from.
	for _, group := range [][]model.ExtractedEntity{record.Scores, record.Procedures, record.Medications, record.Complications, record.Examinations, record.Consultations, record.Imaging, record.FollowUps} {
		for _, e := range group {
			if e.TemporalContext.POD != nil && e.TemporalContext.ResolvedDate == nil {
				issues = append(issues, model.Issue{
					Severity: model.SeverityWarning, Code: "MISSING_POD_ANCHOR",
					Message: "POD notation found with no surgery anchor; date left unresolved",
				})
			}
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return model.SeverityRank(issues[i].Severity) < model.SeverityRank(issues[j].Severity)
	})

	report := model.QualityReport{
		Overall:         overall,
		Dimensions:      dims,
		Issues:          issues,
		Recommendations: recommendationsFrom(issues),
		Incomplete:      incomplete,
	}
	log.Infow("quality scored", "overall", overall, "rating", model.Rating(overall), "issues", len(issues), "incomplete", incomplete)
	return report
}

// LowestScoringDimension names the dimension the orchestrator's
// refinement loop should target next.
func LowestScoringDimension(report model.QualityReport) model.DimensionName {
	var worst model.DimensionName
	lowest := 2.0
	for _, name := range dimensionOrder {
		d, ok := report.Dimensions[name]
		if !ok {
			continue
		}
		if d.Score < lowest {
			lowest = d.Score
			worst = name
		}
	}
	return worst
}

func recommendationsFrom(issues []model.Issue) []string {
	var out []string
	for _, iss := range issues {
		if iss.Severity != model.SeverityCritical && iss.Severity != model.SeverityMajor {
			continue
		}
		out = append(out, iss.Message)
		if len(out) >= 5 {
			break
		}
	}
	return out
}
