package narrative

import (
	"strings"
	"text/template"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// sectionTemplates holds one text/template per section, used in
// template mode (spec.md §4.8) when the LLM is unavailable or the
// orchestrator requests deterministic output. Each template operates
// over a templateData built from the merged record and timeline.
var sectionTemplates = map[model.SectionKey]*template.Template{
	model.SectionChiefComplaint:          mustTemplate("chiefComplaint", `{{if .Complaint}}{{.Complaint}}{{else}}No chief complaint documented.{{end}}`),
	model.SectionHistoryOfPresentIllness: mustTemplate("hpi", `{{if .Ictus}}Symptom onset {{.Ictus}}.{{else}}History of present illness not documented.{{end}}`),
	model.SectionHospitalCourse:          mustTemplate("hospitalCourse", `{{range .CourseEvents}}On {{.Date}}, {{.Description}} ({{.Relation}}).{{"\n"}}{{else}}No hospital course events documented.{{end}}`),
	model.SectionProcedures:              mustTemplate("procedures", `{{range .Procedures}}{{.Name}} performed {{if .Date}}on {{.Date}}{{else}}(date not documented){{end}}.{{"\n"}}{{else}}No procedures documented.{{end}}`),
	model.SectionComplications:           mustTemplate("complications", `{{range .Complications}}{{.Name}}{{if .Severity}} ({{.Severity}}){{end}}{{if .Date}} on {{.Date}}{{end}}.{{"\n"}}{{else}}No complications documented.{{end}}`),
	model.SectionConsultations:           mustTemplate("consultations", `{{range .Consultations}}{{.Service}} consulted{{if .Reason}} for {{.Reason}}{{end}}.{{"\n"}}{{else}}No consultations documented.{{end}}`),
	model.SectionDischargeStatus:         mustTemplate("dischargeStatus", `{{if .Disposition}}Discharged in stable condition to {{.Disposition}}.{{else}}Discharge status not documented.{{end}}`),
	model.SectionDischargeMedications:    mustTemplate("dischargeMedications", `{{range .Medications}}{{.Name}}{{if .Category}} ({{.Category}}){{end}}.{{"\n"}}{{else}}No discharge medications documented.{{end}}`),
	model.SectionDischargeDisposition:    mustTemplate("dischargeDisposition", `{{if .Disposition}}{{.Disposition}}{{else}}Disposition not documented.{{end}}`),
	model.SectionFollowUpPlan:            mustTemplate("followUpPlan", `{{range .FollowUps}}Follow up with {{.Service}}{{if .Timing}} {{.Timing}}{{end}}.{{"\n"}}{{else}}No follow-up plan documented.{{end}}`),
}

func mustTemplate(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

type courseEvent struct {
	Date        string
	Description string
	Relation    model.EventRelation
}

type procedureRow struct{ Name, Date string }
type complicationRow struct{ Name, Date, Severity string }
type consultationRow struct{ Service, Reason string }
type medicationRow struct{ Name, Category string }
type followUpRow struct{ Service, Timing string }

// templateData is the value every section template renders over.
type templateData struct {
	Complaint     string
	Ictus         string
	Disposition   string
	CourseEvents  []courseEvent
	Procedures    []procedureRow
	Complications []complicationRow
	Consultations []consultationRow
	Medications   []medicationRow
	FollowUps     []followUpRow
}

func buildTemplateData(record model.ExtractionRecord, timeline model.Timeline) templateData {
	data := templateData{Ictus: record.Dates.Ictus}

	for _, ev := range timeline.Events {
		data.CourseEvents = append(data.CourseEvents, courseEvent{Date: ev.Date, Description: ev.Description, Relation: ev.Relation})
	}
	for _, e := range record.Procedures {
		if v, ok := e.Value.(model.ProcedureValue); ok {
			data.Procedures = append(data.Procedures, procedureRow{Name: v.Name, Date: v.Date})
		}
	}
	for _, e := range record.Complications {
		if v, ok := e.Value.(model.ComplicationValue); ok {
			data.Complications = append(data.Complications, complicationRow{Name: v.Name, Date: v.Date, Severity: v.Severity})
			if data.Complaint == "" {
				data.Complaint = v.Name
			}
		}
	}
	for _, e := range record.Consultations {
		if v, ok := e.Value.(model.ConsultationValue); ok {
			data.Consultations = append(data.Consultations, consultationRow{Service: v.Service, Reason: v.Reason})
		}
	}
	for _, e := range record.Medications {
		if v, ok := e.Value.(model.MedicationValue); ok {
			data.Medications = append(data.Medications, medicationRow{Name: v.Name, Category: v.Category})
		}
	}
	for _, e := range record.FollowUps {
		if v, ok := e.Value.(model.FollowUpValue); ok {
			data.FollowUps = append(data.FollowUps, followUpRow{Service: v.Service, Timing: v.Timing})
		}
	}
	if record.Disposition != nil {
		if v, ok := record.Disposition.Value.(model.DischargeDispositionValue); ok {
			data.Disposition = v.Disposition
		}
	}
	return data
}

// renderTemplate fills every section via its deterministic template.
func renderTemplate(record model.ExtractionRecord, timeline model.Timeline) model.NarrativeSection {
	data := buildTemplateData(record, timeline)
	var section model.NarrativeSection
	for _, key := range model.AllSectionKeys {
		var b strings.Builder
		_ = sectionTemplates[key].Execute(&b, data)
		section = section.Set(key, strings.TrimSpace(b.String()))
	}
	return section
}
