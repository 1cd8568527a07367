package quality

import (
	"fmt"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func isCritical(key model.SectionKey) bool {
	for _, c := range model.CriticalSectionKeys {
		if c == key {
			return true
		}
	}
	return false
}

// scoreCompleteness checks critical sections are present and non-empty,
// every other section has content, and the required scalar fields were
// resolved (spec.md §4.10).
func scoreCompleteness(record model.ExtractionRecord, narrative model.NarrativeSection) model.DimensionScore {
	var issues []model.Issue
	total, passed := 0, 0.0

	for _, key := range model.AllSectionKeys {
		total++
		if narrative.Get(key) != "" {
			passed++
			continue
		}
		severity := model.SeverityMinor
		code := "SECTION_EMPTY"
		if isCritical(key) {
			severity = model.SeverityCritical
			code = "CRITICAL_SECTION_EMPTY"
		}
		issues = append(issues, model.Issue{
			Severity: severity, Code: code,
			Message:   fmt.Sprintf("%s is empty", key),
			Dimension: string(model.DimensionCompleteness),
		})
	}

	required := []struct{ name, value string }{
		{"patient name", record.Demographics.Name},
		{"MRN", record.Demographics.MRN},
		{"admission date", record.Dates.Admission},
		{"discharge date", record.Dates.Discharge},
	}
	for _, f := range required {
		total++
		if f.value != "" {
			passed++
			continue
		}
		issues = append(issues, model.Issue{
			Severity: model.SeverityMajor, Code: "MISSING_REQUIRED_FIELD",
			Message:   fmt.Sprintf("%s was not resolved", f.name),
			Dimension: string(model.DimensionCompleteness),
		})
	}

	return model.DimensionScore{
		Score:   passed / float64(total),
		Issues:  issues,
		Details: fmt.Sprintf("%d/%d completeness checks passed", int(passed), total),
	}
}
