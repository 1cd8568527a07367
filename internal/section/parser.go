// Package section implements the Section Parser (spec.md §4.9):
// extracting the fixed NarrativeSection keys out of free-text LLM
// output, across the four formatting styles the Narrative Generator's
// prompt may come back in.
package section

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("section")

// aliases maps every accepted spelling of a section name (as an LLM is
// likely to render it) to its canonical SectionKey.
var aliases = map[string]model.SectionKey{
	"chiefcomplaint":          model.SectionChiefComplaint,
	"chief complaint":         model.SectionChiefComplaint,
	"historyofpresentillness": model.SectionHistoryOfPresentIllness,
	"history of present illness": model.SectionHistoryOfPresentIllness,
	"hpi":                      model.SectionHistoryOfPresentIllness,
	"hospitalcourse":           model.SectionHospitalCourse,
	"hospital course":          model.SectionHospitalCourse,
	"procedures":               model.SectionProcedures,
	"complications":            model.SectionComplications,
	"consultations":            model.SectionConsultations,
	"dischargestatus":          model.SectionDischargeStatus,
	"discharge status":         model.SectionDischargeStatus,
	"dischargemedications":     model.SectionDischargeMedications,
	"discharge medications":    model.SectionDischargeMedications,
	"dischargedisposition":     model.SectionDischargeDisposition,
	"discharge disposition":    model.SectionDischargeDisposition,
	"followupplan":             model.SectionFollowUpPlan,
	"follow-up plan":           model.SectionFollowUpPlan,
	"follow up plan":           model.SectionFollowUpPlan,
}

func canonicalize(raw string) (model.SectionKey, bool) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.Trim(norm, "*: \t")
	key, ok := aliases[norm]
	return key, ok
}

var (
	// "SECTION:" or "SECTION_NAME:" followed by content to end of line/block.
	plainRe = regexp.MustCompile(`(?m)^\s*([A-Za-z][A-Za-z _-]{2,40}):\s*(.*)$`)
	// "1. SECTION:" numbered style.
	numberedRe = regexp.MustCompile(`(?m)^\s*\d+[.)]\s*([A-Za-z][A-Za-z _-]{2,40}):\s*(.*)$`)
	// "**SECTION**" markdown-bold style, content follows on the same or next line.
	boldRe = regexp.MustCompile(`(?m)^\s*\*\*([A-Za-z][A-Za-z _-]{2,40})\*\*:?\s*(.*)$`)
)

// Result carries the parsed section text plus which keys the parse
// missed, so the orchestrator can run a completer pass on just those.
type Result struct {
	Section model.NarrativeSection
	Missing []model.SectionKey
}

// Parse tries the three structured styles in order; if fewer than half
// of the expected sections are found, it falls back to lenient mode.
func Parse(text string) Result {
	for _, re := range []*regexp.Regexp{numberedRe, boldRe, plainRe} {
		section, found := parseWithPattern(text, re)
		if len(found) >= (len(model.AllSectionKeys)+1)/2 {
			return finish(section, found)
		}
	}
	section, found := parseLenient(text)
	return finish(section, found)
}

func finish(section model.NarrativeSection, found map[model.SectionKey]bool) Result {
	var missing []model.SectionKey
	for _, k := range model.AllSectionKeys {
		if !found[k] {
			missing = append(missing, k)
			log.Warnw("section parser miss", "section", k)
		}
	}
	return Result{Section: section, Missing: missing}
}

func parseWithPattern(text string, re *regexp.Regexp) (model.NarrativeSection, map[model.SectionKey]bool) {
	var section model.NarrativeSection
	found := map[model.SectionKey]bool{}
	matches := re.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		label := text[m[2]:m[3]]
		key, ok := canonicalize(label)
		if !ok {
			continue
		}
		start := m[3]
		if m[4] >= 0 {
			start = m[4]
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(text[start:end])
		section = section.Set(key, content)
		found[key] = true
	}
	return section, found
}

type lenientHit struct {
	key   model.SectionKey
	start int
	end   int
}

// parseLenient scans for any occurrence of a section name, accepted
// either as "name:" or "name" immediately followed by a newline.
func parseLenient(text string) (model.NarrativeSection, map[model.SectionKey]bool) {
	var section model.NarrativeSection
	found := map[model.SectionKey]bool{}

	var hits []lenientHit
	lower := strings.ToLower(text)
	for alias, key := range aliases {
		idx := 0
		for {
			pos := strings.Index(lower[idx:], alias)
			if pos < 0 {
				break
			}
			abs := idx + pos
			tail := abs + len(alias)
			if tail < len(text) && (text[tail] == ':' || text[tail] == '\n') {
				hits = append(hits, lenientHit{key: key, start: abs, end: tail})
			}
			idx = abs + len(alias)
		}
	}
	if len(hits) == 0 {
		return section, found
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })
	for i, h := range hits {
		contentStart := h.end
		if contentStart < len(text) && (text[contentStart] == ':' || text[contentStart] == '\n') {
			contentStart++
		}
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		if contentStart > end {
			continue
		}
		content := strings.TrimSpace(text[contentStart:end])
		if content == "" {
			continue
		}
		section = section.Set(h.key, content)
		found[h.key] = true
	}
	return section, found
}

