package quality

import (
	"fmt"
	"strings"
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// scoreConsistency checks date monotonicity, that discharge medications
// mentioned in the narrative roughly match the structured medication
// list, and that complications do not predate the procedures that
// would have caused them (spec.md §4.10's diagnosis/procedure
// alignment, adapted: this pipeline extracts complications rather than
// discrete diagnoses — see DESIGN.md).
func scoreConsistency(record model.ExtractionRecord, narrative model.NarrativeSection) model.DimensionScore {
	var issues []model.Issue
	total, passed := 0, 0.0

	total++
	if datesMonotonic(record, &issues) {
		passed++
	}

	total++
	if complicationsFollowProcedures(record, &issues) {
		passed++
	}

	total++
	if medicationCountsAgree(record, narrative, &issues) {
		passed++
	}

	return model.DimensionScore{
		Score:   passed / float64(total),
		Issues:  issues,
		Details: fmt.Sprintf("%d/%d consistency checks passed", int(passed), total),
	}
}

func datesMonotonic(record model.ExtractionRecord, issues *[]model.Issue) bool {
	admission, hasAdmission := parseDate(record.Dates.Admission)
	discharge, hasDischarge := parseDate(record.Dates.Discharge)
	if hasAdmission && hasDischarge && discharge.Before(admission) {
		*issues = append(*issues, model.Issue{
			Severity: model.SeverityMajor, Code: "DISCHARGE_BEFORE_ADMISSION",
			Message:   "discharge date precedes admission date",
			Dimension: string(model.DimensionConsistency),
		})
		return false
	}
	ok := true
	for _, s := range record.Dates.Surgery {
		surgery, hasSurgery := parseDate(s)
		if !hasSurgery {
			continue
		}
		if hasAdmission && surgery.Before(admission) {
			*issues = append(*issues, model.Issue{
				Severity: model.SeverityMinor, Code: "SURGERY_BEFORE_ADMISSION",
				Message:   fmt.Sprintf("surgery date %s precedes admission", s),
				Dimension: string(model.DimensionConsistency),
			})
			ok = false
		}
		if hasDischarge && surgery.After(discharge) {
			*issues = append(*issues, model.Issue{
				Severity: model.SeverityMinor, Code: "SURGERY_AFTER_DISCHARGE",
				Message:   fmt.Sprintf("surgery date %s is after discharge", s),
				Dimension: string(model.DimensionConsistency),
			})
			ok = false
		}
	}
	return ok
}

func complicationsFollowProcedures(record model.ExtractionRecord, issues *[]model.Issue) bool {
	var earliestProcedure time.Time
	hasProcedure := false
	for _, e := range record.Procedures {
		v, ok := e.Value.(model.ProcedureValue)
		if !ok {
			continue
		}
		t, ok := parseDate(v.Date)
		if !ok {
			continue
		}
		if !hasProcedure || t.Before(earliestProcedure) {
			earliestProcedure = t
			hasProcedure = true
		}
	}
	if !hasProcedure {
		return true
	}

	ok := true
	for _, e := range record.Complications {
		v, valid := e.Value.(model.ComplicationValue)
		if !valid {
			continue
		}
		t, known := parseDate(v.Date)
		if !known {
			continue
		}
		if t.Before(earliestProcedure) {
			*issues = append(*issues, model.Issue{
				Severity: model.SeverityMinor, Code: "COMPLICATION_BEFORE_PROCEDURE",
				Message:   fmt.Sprintf("%s dated before the earliest recorded procedure", v.Name),
				Dimension: string(model.DimensionConsistency),
			})
			ok = false
		}
	}
	return ok
}

func medicationCountsAgree(record model.ExtractionRecord, narrative model.NarrativeSection, issues *[]model.Issue) bool {
	if len(record.Medications) == 0 {
		return true
	}
	mentioned := 0
	text := strings.ToLower(narrative.DischargeMedications)
	for _, e := range record.Medications {
		v, ok := e.Value.(model.MedicationValue)
		if !ok || v.Name == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(v.Name)) {
			mentioned++
		}
	}
	if mentioned < len(record.Medications) {
		*issues = append(*issues, model.Issue{
			Severity: model.SeverityMinor, Code: "MEDICATION_LIST_MISMATCH",
			Message:   fmt.Sprintf("discharge medications section mentions %d of %d extracted medications", mentioned, len(record.Medications)),
			Dimension: string(model.DimensionConsistency),
		})
		return false
	}
	return true
}
