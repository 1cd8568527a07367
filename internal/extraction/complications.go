package extraction

import "github.com/ramihatou97/dcs-sub003/internal/model"

func (e *Extractor) extractComplications(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, cp := range complicationPatterns {
		for _, m := range cp.re.FindAllStringIndex(note.Text, -1) {
			if isNegated(note.Text, m[0]) {
				continue
			}
			explicitDate := explicitDateNear(note.Text, m[0], m[1])
			explicitPOD := explicitPODNear(note.Text, m[0], m[1])
			tc := e.analyze(note, m[0], m[1], anchors, explicitPOD, explicitDate)

			dateISO := ""
			if explicitDate != nil {
				dateISO = explicitDate.Format("2006-01-02")
			} else if tc.ResolvedDate != nil {
				dateISO = tc.ResolvedDate.Format("2006-01-02")
			}

			result.Complications = append(result.Complications, model.ExtractedEntity{
				Kind: model.EntityComplication,
				Value: model.ComplicationValue{
					Name: cp.name,
					Raw:  note.Text[m[0]:m[1]],
					Date: dateISO,
				},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      cp.confidence,
				TemporalContext: tc,
			})
		}
	}
}
