package extraction

import (
	"strconv"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

func (e *Extractor) extractDemographics(note model.NormalizedNote, result *model.PartialExtraction) {
	if m := nameRe.FindStringSubmatchIndex(note.Text); m != nil {
		value := note.Text[m[2]:m[3]]
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDemographic,
			Value:           model.DemographicValue{Field: "name", Raw: value},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceHigh,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}

	if m := mrnRe.FindStringSubmatchIndex(note.Text); m != nil {
		raw := note.Text[m[2]:m[3]]
		if cleaned, ok := validateMRN(raw); ok {
			result.Scalars = append(result.Scalars, model.ExtractedEntity{
				Kind:            model.EntityDemographic,
				Value:           model.DemographicValue{Field: "mrn", Raw: cleaned},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      ConfidenceCritical,
				TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
			})
		}
	}

	if m := dobRe.FindStringSubmatchIndex(note.Text); m != nil {
		raw := note.Text[m[2]:m[3]]
		if validateDOBNotFuture(raw, e.now) {
			result.Scalars = append(result.Scalars, model.ExtractedEntity{
				Kind:            model.EntityDemographic,
				Value:           model.DemographicValue{Field: "dob", Raw: raw},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      ConfidenceCritical,
				TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
			})
		}
	}

	if m := ageRe.FindStringSubmatchIndex(note.Text); m != nil {
		raw := note.Text[m[2]:m[3]]
		if age, ok := validateAge(raw); ok {
			result.Scalars = append(result.Scalars, model.ExtractedEntity{
				Kind:            model.EntityDemographic,
				Value:           model.DemographicValue{Field: "age", Raw: strconv.Itoa(age)},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      ConfidenceHigh,
				TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
			})
		}
	}

	if m := genderRe.FindStringSubmatchIndex(note.Text); m != nil {
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDemographic,
			Value:           model.DemographicValue{Field: "gender", Raw: note.Text[m[2]:m[3]]},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceMedium,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}

	if m := attendingRe.FindStringSubmatchIndex(note.Text); m != nil {
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDemographic,
			Value:           model.DemographicValue{Field: "attending", Raw: note.Text[m[2]:m[3]]},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceMedium,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}
}

func (e *Extractor) extractDates(note model.NormalizedNote, result *model.PartialExtraction) {
	if m := admissionDateRe.FindStringSubmatchIndex(note.Text); m != nil {
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDate,
			Value:           model.DateValue{Field: "admission", ISO: note.Text[m[2]:m[3]]},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceCritical,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}
	for _, m := range surgeryDateRe.FindAllStringSubmatchIndex(note.Text, -1) {
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDate,
			Value:           model.DateValue{Field: "surgery", ISO: note.Text[m[2]:m[3]]},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceCritical,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}
	if m := dischargeDateRe.FindStringSubmatchIndex(note.Text); m != nil {
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDate,
			Value:           model.DateValue{Field: "discharge", ISO: note.Text[m[2]:m[3]]},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceCritical,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}
	if m := ictusDateRe.FindStringSubmatchIndex(note.Text); m != nil {
		result.Scalars = append(result.Scalars, model.ExtractedEntity{
			Kind:            model.EntityDate,
			Value:           model.DateValue{Field: "ictus", ISO: note.Text[m[2]:m[3]]},
			SourceSpan:      span(note, m[0], m[1]),
			Confidence:      ConfidenceHigh,
			TemporalContext: e.analyze(note, m[0], m[1], model.AnchorDates{}, nil, nil),
		})
	}
}
