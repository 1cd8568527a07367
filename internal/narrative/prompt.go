package narrative

import (
	"fmt"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

const systemPrompt = `You write hospital discharge summary sections from structured clinical data.
Rules:
- Use only the facts given; never invent a name, date, value, or finding.
- Narrate events in the past tense; describe the discharge state in the present tense.
- Follow the supplied chronological order for the hospital course.
- Return exactly one labeled section per line, in the form "SECTION_NAME: content".
- Emit every section name listed below, even if its content is a single sentence noting nothing further occurred.`

// buildPrompt renders the record + timeline into the single LLM-mode
// prompt spec.md §4.8 calls for: one request naming every required
// section, the required tone, and the grounding facts to write from.
func buildPrompt(record model.ExtractionRecord, timeline model.Timeline) string {
	var b strings.Builder
	b.WriteString("Sections required (use these exact names):\n")
	for _, k := range model.AllSectionKeys {
		b.WriteString("- ")
		b.WriteString(string(k))
		b.WriteString("\n")
	}

	b.WriteString("\nDemographics: ")
	fmt.Fprintf(&b, "%s, MRN %s, attending %s\n", record.Demographics.Name, record.Demographics.MRN, record.Demographics.Attending)

	b.WriteString("\nChronological hospital course:\n")
	for _, ev := range timeline.Events {
		date := ev.Date
		if date == "" {
			date = "date unknown"
		}
		fmt.Fprintf(&b, "- [%s] %s (%s)\n", date, ev.Description, ev.Relation)
	}

	b.WriteString("\nDischarge medications and disposition:\n")
	for _, m := range record.Medications {
		if mv, ok := m.Value.(model.MedicationValue); ok {
			fmt.Fprintf(&b, "- %s (%s)\n", mv.Name, mv.Category)
		}
	}
	if record.Disposition != nil {
		if dv, ok := record.Disposition.Value.(model.DischargeDispositionValue); ok {
			fmt.Fprintf(&b, "- disposition: %s\n", dv.Disposition)
		}
	}

	b.WriteString("\nFollow-up plan:\n")
	for _, f := range record.FollowUps {
		if fv, ok := f.Value.(model.FollowUpValue); ok {
			fmt.Fprintf(&b, "- %s: %s\n", fv.Service, fv.Timing)
		}
	}

	return b.String()
}
