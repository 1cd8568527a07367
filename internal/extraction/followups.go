package extraction

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func (e *Extractor) extractFollowUps(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, m := range followUpRe.FindAllStringSubmatchIndex(note.Text, -1) {
		service := strings.TrimSpace(note.Text[m[2]:m[3]])
		timing := strings.TrimSpace(note.Text[m[4]:m[5]])
		tc := e.analyze(note, m[0], m[1], anchors, explicitPODNear(note.Text, m[0], m[1]), explicitDateNear(note.Text, m[0], m[1]))

		result.FollowUps = append(result.FollowUps, model.ExtractedEntity{
			Kind: model.EntityFollowUp,
			Value: model.FollowUpValue{
				Service: service,
				Timing:  timing,
				Raw:     note.Text[m[0]:m[1]],
			},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceMedium,
			TemporalContext: tc,
		})
	}
}
