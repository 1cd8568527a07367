package extraction

import "github.com/ramihatou97/dcs-sub003/internal/model"

func (e *Extractor) extractProcedures(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, pp := range procedurePatterns {
		for _, m := range pp.re.FindAllStringIndex(note.Text, -1) {
			explicitDate := explicitDateNear(note.Text, m[0], m[1])
			explicitPOD := explicitPODNear(note.Text, m[0], m[1])
			tc := e.analyze(note, m[0], m[1], anchors, explicitPOD, explicitDate)

			dateISO := ""
			if explicitDate != nil {
				dateISO = explicitDate.Format("2006-01-02")
			} else if tc.ResolvedDate != nil {
				dateISO = tc.ResolvedDate.Format("2006-01-02")
			}

			result.Procedures = append(result.Procedures, model.ExtractedEntity{
				Kind: model.EntityProcedure,
				Value: model.ProcedureValue{
					Name: pp.name,
					Raw:  note.Text[m[0]:m[1]],
					Date: dateISO,
				},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      pp.confidence,
				TemporalContext: tc,
			})
		}
	}
}
