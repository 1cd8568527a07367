package extraction

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// dispositionKeywords maps a raw trailing phrase to the canonical
// disposition category used downstream by the Narrative Generator.
var dispositionKeywords = []struct {
	contains string
	value    string
}{
	{"rehab", "rehab"},
	{"snf", "SNF"},
	{"skilled nursing", "SNF"},
	{"ltac", "LTAC"},
	{"home", "home"},
}

func classifyDisposition(raw string) string {
	lower := strings.ToLower(raw)
	for _, k := range dispositionKeywords {
		if strings.Contains(lower, k.contains) {
			return k.value
		}
	}
	if strings.TrimSpace(raw) == "" {
		return "home"
	}
	return "other"
}

func (e *Extractor) extractDisposition(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	m := dispositionRe.FindStringSubmatchIndex(note.Text)
	if m == nil {
		return
	}
	raw := ""
	if m[2] != -1 {
		raw = strings.TrimSpace(note.Text[m[2]:m[3]])
	}
	tc := e.analyze(note, m[0], m[1], anchors, explicitPODNear(note.Text, m[0], m[1]), explicitDateNear(note.Text, m[0], m[1]))

	result.Disposition = append(result.Disposition, model.ExtractedEntity{
		Kind: model.EntityDischargeDisposition,
		Value: model.DischargeDispositionValue{
			Disposition: classifyDisposition(raw),
			Raw:         note.Text[m[0]:m[1]],
		},
		SourceSpan:      span(note, m[0], m[1]),
		Confidence:      ConfidenceMedium,
		TemporalContext: tc,
	})
}
