package quality

import (
	"fmt"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var vagueQuantifiers = []string{"multiple", "several", "some", "a few", "numerous"}

type countedCategory struct {
	noun  string
	count int
}

// scoreSpecificity penalizes vague quantifiers ("several complications")
// when the structured data already knows the exact count.
func scoreSpecificity(record model.ExtractionRecord, narrative model.NarrativeSection) model.DimensionScore {
	categories := []countedCategory{
		{"complication", len(record.Complications)},
		{"procedure", len(record.Procedures)},
		{"medication", len(record.Medications)},
		{"consultation", len(record.Consultations)},
	}

	text := fullNarrativeText(narrative)
	var issues []model.Issue
	total, passed := 0, 0.0

	for _, cat := range categories {
		if cat.count == 0 {
			continue
		}
		total++
		vague := false
		for _, w := range vagueQuantifiers {
			if strings.Contains(text, w+" "+cat.noun) {
				vague = true
				break
			}
		}
		if vague {
			issues = append(issues, model.Issue{
				Severity: model.SeverityMinor, Code: "VAGUE_QUANTIFIER",
				Message:   fmt.Sprintf("narrative uses a vague quantifier for %ss when an exact count (%d) is known", cat.noun, cat.count),
				Dimension: string(model.DimensionSpecificity),
			})
			continue
		}
		passed++
	}

	if total == 0 {
		return model.DimensionScore{Score: 1, Details: "no quantifiable categories to check"}
	}
	return model.DimensionScore{
		Score:   passed / float64(total),
		Issues:  issues,
		Details: fmt.Sprintf("%d/%d specificity checks passed", int(passed), total),
	}
}
