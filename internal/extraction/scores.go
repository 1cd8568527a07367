package extraction

import (
	"strconv"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// romanToArabic resolves Hunt-Hess grades occasionally written as
// roman numerals ("Hunt-Hess grade III").
var romanToArabic = map[string]float64{"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5}

func parseScoreValue(raw string) (float64, bool) {
	if v, ok := romanToArabic[raw]; ok {
		return v, true
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e *Extractor) extractScores(note model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	for _, sp := range scorePatterns {
		for _, m := range sp.re.FindAllStringSubmatchIndex(note.Text, -1) {
			scale := sp.scale
			// The Fisher regex matches both plain and modified Fisher;
			// a match preceded by "modified" is recorded on the
			// modifiedFisher scale instead, so each mention lands on
			// exactly one of the two scales.
			if scale == "fisher" && modifiedFisherPrefixRe.MatchString(nearby(note.Text, m[0], m[0])) {
				scale = "modifiedFisher"
			}
			raw := note.Text[m[2]:m[3]]
			value, ok := parseScoreValue(raw)
			if !ok {
				continue
			}
			rng := scoreRanges[scale]
			if !validateScoreRange(value, rng[0], rng[1]) {
				continue
			}
			if isNegated(note.Text, m[0]) {
				continue
			}
			result.Scores = append(result.Scores, model.ExtractedEntity{
				Kind:            model.EntityFunctionalScore,
				Value:           model.ScoreValue{Scale: scale, Value: value},
				SourceSpan:      span(note, m[0], m[1]),
				Confidence:      sp.confidence,
				TemporalContext: e.analyze(note, m[0], m[1], anchors, explicitPODNear(note.Text, m[0], m[1]), explicitDateNear(note.Text, m[0], m[1])),
			})
		}
	}
}
