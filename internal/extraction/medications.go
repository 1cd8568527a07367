package extraction

import "github.com/ramihatou97/dcs-sub003/internal/model"

func (e *Extractor) extractMedications(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, mp := range medicationPatterns {
		for _, m := range mp.re.FindAllStringIndex(note.Text, -1) {
			if isNegated(note.Text, m[0]) {
				continue
			}
			tc := e.analyze(note, m[0], m[1], anchors, explicitPODNear(note.Text, m[0], m[1]), explicitDateNear(note.Text, m[0], m[1]))
			result.Medications = append(result.Medications, model.ExtractedEntity{
				Kind: model.EntityMedication,
				Value: model.MedicationValue{
					Name:     mp.name,
					Category: mp.category,
				},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      mp.confidence,
				TemporalContext: tc,
			})
		}
	}
}

func (e *Extractor) extractImaging(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, ip := range imagingPatterns {
		for _, m := range ip.re.FindAllStringIndex(note.Text, -1) {
			tc := e.analyze(note, m[0], m[1], anchors, explicitPODNear(note.Text, m[0], m[1]), explicitDateNear(note.Text, m[0], m[1]))
			dateISO := ""
			if tc.ResolvedDate != nil {
				dateISO = tc.ResolvedDate.Format("2006-01-02")
			}
			result.Imaging = append(result.Imaging, model.ExtractedEntity{
				Kind: model.EntityImagingFinding,
				Value: model.ImagingFindingValue{
					Modality: ip.modality,
					Finding:  note.Text[m[0]:m[1]],
					Date:     dateISO,
				},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      ip.confidence,
				TemporalContext: tc,
			})
		}
	}
}
