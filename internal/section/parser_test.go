package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func TestParse_PlainColonStyle(t *testing.T) {
	text := "CHIEF COMPLAINT: headache and neck stiffness\n" +
		"HOSPITAL COURSE: admitted for SAH, underwent craniotomy\n" +
		"DISCHARGE DISPOSITION: home\n"

	result := Parse(text)

	assert.Equal(t, "headache and neck stiffness", result.Section.ChiefComplaint)
	assert.Contains(t, result.Section.HospitalCourse, "craniotomy")
	assert.Equal(t, "home", result.Section.DischargeDisposition)
}

func TestParse_NumberedStyle(t *testing.T) {
	text := "1. Chief Complaint: headache\n" +
		"2. Hospital Course: uneventful recovery\n" +
		"3. Discharge Disposition: rehab\n" +
		"4. Procedures: craniotomy\n" +
		"5. Complications: none\n" +
		"6. Consultations: neurosurgery\n"

	result := Parse(text)

	assert.Equal(t, "headache", result.Section.ChiefComplaint)
	assert.Equal(t, "rehab", result.Section.DischargeDisposition)
}

func TestParse_MarkdownBoldStyle(t *testing.T) {
	text := "**Chief Complaint**: headache\n" +
		"**Hospital Course**: stable course\n" +
		"**Discharge Disposition**: home\n" +
		"**Procedures**: craniotomy\n" +
		"**Complications**: none\n" +
		"**Consultations**: neurosurgery\n"

	result := Parse(text)

	assert.Equal(t, "headache", result.Section.ChiefComplaint)
	assert.Equal(t, "home", result.Section.DischargeDisposition)
}

func TestParse_LenientFallback_WhenStructuredStylesMostlyMiss(t *testing.T) {
	text := "chief complaint\nheadache and neck stiffness\n" +
		"hospital course\nuneventful recovery throughout the stay\n"

	result := Parse(text)

	assert.Contains(t, result.Section.ChiefComplaint, "headache")
	assert.Contains(t, result.Section.HospitalCourse, "uneventful")
}

func TestParse_MissingSectionsAreReported(t *testing.T) {
	text := "CHIEF COMPLAINT: headache\n"

	result := Parse(text)

	require.NotEmpty(t, result.Missing)
	assert.Contains(t, result.Missing, model.SectionHospitalCourse)
}
