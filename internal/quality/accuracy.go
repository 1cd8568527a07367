package quality

import (
	"fmt"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// scoreAccuracy cross-checks that every extracted entity actually
// surfaces in the generated narrative, the closest automatable proxy
// for "extracted values match source text; no hallucinations
// detectable by cross-check" without re-parsing the raw notes here.
func scoreAccuracy(record model.ExtractionRecord, narrative model.NarrativeSection) model.DimensionScore {
	text := fullNarrativeText(narrative)

	var entities []model.ExtractedEntity
	entities = append(entities, record.Procedures...)
	entities = append(entities, record.Medications...)
	entities = append(entities, record.Complications...)
	entities = append(entities, record.Consultations...)
	entities = append(entities, record.Imaging...)
	entities = append(entities, record.FollowUps...)

	if len(entities) == 0 {
		return model.DimensionScore{Score: 1, Details: "no entities to cross-check"}
	}

	var issues []model.Issue
	matched := 0.0
	for _, e := range entities {
		name := nameOf(e)
		if name == "" {
			matched++
			continue
		}
		if strings.Contains(text, name) {
			matched++
			continue
		}
		issues = append(issues, model.Issue{
			Severity:  model.SeverityMajor,
			Code:      "ENTITY_NOT_GROUNDED_IN_NARRATIVE",
			Message:   fmt.Sprintf("%q does not appear in the generated narrative", name),
			Dimension: string(model.DimensionAccuracy),
		})
	}

	return model.DimensionScore{
		Score:   matched / float64(len(entities)),
		Issues:  issues,
		Details: fmt.Sprintf("%d/%d extracted entities grounded in narrative text", int(matched), len(entities)),
	}
}
