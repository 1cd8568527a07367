package quality

import (
	"fmt"
	"math"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var transitionWords = []string{
	"subsequently", "following", "after", "thereafter", "postoperatively",
	"on hospital day", "during the remainder", "at that time", "once",
}

func hasTransitionWords(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range transitionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range strings.FieldsFunc(text, func(r rune) bool { return r == '.' || r == '\n' }) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// sentenceLengthVaries is true when the narrative has fewer than two
// sentences (nothing to compare) or its sentence lengths show real
// spread rather than uniform robotic phrasing.
func sentenceLengthVaries(text string) bool {
	sentences := splitSentences(text)
	if len(sentences) < 2 {
		return true
	}
	lengths := make([]float64, len(sentences))
	var sum float64
	for i, s := range sentences {
		n := float64(len(strings.Fields(s)))
		lengths[i] = n
		sum += n
	}
	mean := sum / float64(len(lengths))
	var variance float64
	for _, n := range lengths {
		variance += (n - mean) * (n - mean)
	}
	variance /= float64(len(lengths))
	return math.Sqrt(variance) >= 1.5
}

// repeatedPhrasesAcrossSections flags 4-word phrases that appear
// verbatim in more than one distinct section, a sign of templated
// boilerplate leaking across the narrative.
func repeatedPhrasesAcrossSections(n model.NarrativeSection) []string {
	const gramSize = 4
	seenIn := map[string]model.SectionKey{}
	var repeats []string
	reported := map[string]bool{}

	for _, key := range model.AllSectionKeys {
		words := strings.Fields(strings.ToLower(n.Get(key)))
		for i := 0; i+gramSize <= len(words); i++ {
			phrase := strings.Join(words[i:i+gramSize], " ")
			if owner, ok := seenIn[phrase]; ok {
				if owner != key && !reported[phrase] {
					repeats = append(repeats, phrase)
					reported[phrase] = true
				}
				continue
			}
			seenIn[phrase] = key
		}
	}
	return repeats
}

func scoreNarrativeQuality(narrative model.NarrativeSection) model.DimensionScore {
	var issues []model.Issue
	total, passed := 0, 0.0

	total++
	if hasTransitionWords(narrative.HospitalCourse) {
		passed++
	} else {
		issues = append(issues, model.Issue{
			Severity: model.SeverityMinor, Code: "NO_TRANSITIONS",
			Message:   "hospital course lacks connective transitions between events",
			Dimension: string(model.DimensionNarrativeQuality),
		})
	}

	total++
	if sentenceLengthVaries(narrative.HospitalCourse) {
		passed++
	} else {
		issues = append(issues, model.Issue{
			Severity: model.SeverityMinor, Code: "LOW_SENTENCE_VARIATION",
			Message:   "hospital course sentences are uniform in length",
			Dimension: string(model.DimensionNarrativeQuality),
		})
	}

	total++
	repeats := repeatedPhrasesAcrossSections(narrative)
	if len(repeats) == 0 {
		passed++
	} else {
		for _, p := range repeats {
			issues = append(issues, model.Issue{
				Severity: model.SeverityMinor, Code: "REPEATED_PHRASE",
				Message:   fmt.Sprintf("phrase %q repeats verbatim across sections", p),
				Dimension: string(model.DimensionNarrativeQuality),
			})
		}
	}

	return model.DimensionScore{
		Score:   passed / float64(total),
		Issues:  issues,
		Details: fmt.Sprintf("%d/%d narrative quality checks passed", int(passed), total),
	}
}
