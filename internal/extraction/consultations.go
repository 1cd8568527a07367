package extraction

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func (e *Extractor) extractConsultations(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, m := range consultationRe.FindAllStringSubmatchIndex(note.Text, -1) {
		service := strings.TrimSpace(note.Text[m[2]:m[3]])
		reason := strings.TrimSpace(note.Text[m[4]:m[5]])
		explicitDate := explicitDateNear(note.Text, m[0], m[1])
		tc := e.analyze(note, m[0], m[1], anchors, explicitPODNear(note.Text, m[0], m[1]), explicitDate)

		dateISO := ""
		if explicitDate != nil {
			dateISO = explicitDate.Format("2006-01-02")
		} else if tc.ResolvedDate != nil {
			dateISO = tc.ResolvedDate.Format("2006-01-02")
		}

		result.Consultations = append(result.Consultations, model.ExtractedEntity{
			Kind: model.EntityConsultation,
			Value: model.ConsultationValue{
				Service: service,
				Reason:  reason,
				Date:    dateISO,
			},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceMedium,
			TemporalContext: tc,
		})
	}
}
