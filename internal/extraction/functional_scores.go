package extraction

import (
	"regexp"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// functionalLevel describes one PT/OT or clinical-exam narrative
// phrasing of overall functional independence, with its correlate on
// each of the three functional-status scales spec.md §1 permits
// computing from PT/OT and exam text when no explicit score is
// documented. Values follow the published Karnofsky/ECOG/mRS
// crosswalk used in rehabilitation and oncology practice.
type functionalLevel struct {
	re             *regexp.Regexp
	kps, ecog, mrs float64
}

var functionalLevels = []functionalLevel{
	{regexp.MustCompile(`(?i)\b(?:fully independent|independent with all ADLs|ambulates independently without (?:an? )?assistive device|no functional limitations)\b`), 100, 0, 0},
	{regexp.MustCompile(`(?i)\b(?:ambulates independently with (?:a |an )?(?:cane|walker|assistive device)|independent with (?:stand-by |standby )?supervision|mild weakness)\b`), 90, 1, 1},
	{regexp.MustCompile(`(?i)\b(?:contact guard assist(?:ance)?|minimal assist(?:ance)?|ambulates short distances with assist(?:ance)?)\b`), 70, 2, 3},
	{regexp.MustCompile(`(?i)\b(?:moderate assist(?:ance)? (?:for|with)|requires assist(?:ance)? for most transfers)\b`), 50, 3, 4},
	{regexp.MustCompile(`(?i)\b(?:max(?:imal)? assist(?:ance)?|wheelchair bound|dependent for most ADLs)\b`), 40, 3, 4},
	{regexp.MustCompile(`(?i)\b(?:total(?:ly)? dependent|bed[- ]?bound|unable to perform any ADLs|completely dependent)\b`), 20, 4, 5},
}

// functionalScaleConfidence marks a computed score as less certain than
// an explicit regex match on a documented numeric score.
const functionalScaleConfidence = ConfidenceLow

// computeFunctionalScores implements spec.md §1's Non-goals exception:
// KPS, ECOG, and mRS may be computed from PT/OT and clinical-exam
// narrative when the Pattern Extractor's explicit score patterns found
// no value for that scale anywhere in the input. Only scales still
// missing after the explicit pass are filled, and only from the first
// (document-order, then leftmost-in-note) matching functional-status
// phrase, so the result is reproducible across identical input (spec.md
// §8). Computed entries carry Computed: true so downstream consumers
// never mistake them for a documented score.
func (e *Extractor) computeFunctionalScores(notes []model.NormalizedNote, anchors model.AnchorDates, result *model.PartialExtraction) {
	explicit := map[string]bool{}
	for _, s := range result.Scores {
		if v, ok := s.Value.(model.ScoreValue); ok {
			explicit[v.Scale] = true
		}
	}
	if explicit["kps"] && explicit["ecog"] && explicit["mrs"] {
		return
	}

	for _, note := range notes {
		lvl, start, end, ok := firstFunctionalLevel(note.Text)
		if !ok {
			continue
		}
		if !explicit["kps"] {
			result.Scores = append(result.Scores, e.computedScore(note, anchors, "kps", lvl.kps, start, end))
		}
		if !explicit["ecog"] {
			result.Scores = append(result.Scores, e.computedScore(note, anchors, "ecog", lvl.ecog, start, end))
		}
		if !explicit["mrs"] {
			result.Scores = append(result.Scores, e.computedScore(note, anchors, "mrs", lvl.mrs, start, end))
		}
		return
	}
}

func (e *Extractor) computedScore(note model.NormalizedNote, anchors model.AnchorDates, scale string, value float64, start, end int) model.ExtractedEntity {
	return model.ExtractedEntity{
		Kind:            model.EntityFunctionalScore,
		Value:           model.ScoreValue{Scale: scale, Value: value, Computed: true},
		SourceSpan:      span(note, start, end),
		Confidence:      functionalScaleConfidence,
		TemporalContext: e.analyze(note, start, end, anchors, explicitPODNear(note.Text, start, end), explicitDateNear(note.Text, start, end)),
	}
}

// firstFunctionalLevel returns the first non-negated functional-level
// phrase found in text: the match with the smallest start offset among
// every level pattern, so the result does not depend on table order.
func firstFunctionalLevel(text string) (functionalLevel, int, int, bool) {
	bestStart := -1
	bestEnd := -1
	var best functionalLevel
	found := false
	for _, lvl := range functionalLevels {
		loc := lvl.re.FindStringIndex(text)
		if loc == nil || isNegated(text, loc[0]) {
			continue
		}
		if !found || loc[0] < bestStart {
			bestStart, bestEnd, best, found = loc[0], loc[1], lvl, true
		}
	}
	if !found {
		return functionalLevel{}, 0, 0, false
	}
	return best, bestStart, bestEnd, true
}
