package normalizer

import (
	"regexp"
	"strings"
)

// canonicalSections lists the canonical header names (spec.md §4.1):
// "*", "=", "-", ":" prefixed forms of a name, in any case, all fold to
// the same canonical text.
var canonicalSections = []string{
	"CHIEF COMPLAINT",
	"HISTORY OF PRESENT ILLNESS",
	"HOSPITAL COURSE",
	"PROCEDURES",
	"COMPLICATIONS",
	"CONSULTATIONS",
	"DISCHARGE STATUS",
	"DISCHARGE MEDICATIONS",
	"DISCHARGE DISPOSITION",
	"FOLLOW UP",
	"PAST MEDICAL HISTORY",
	"MEDICATIONS",
	"PHYSICAL EXAM",
	"ASSESSMENT",
	"PLAN",
}

// sectionHeaderRe matches a line that starts with an optional marker
// prefix ("*", "=", "-", ":") followed by a known section name and a
// trailing colon, in any case.
var sectionHeaderRe = buildSectionHeaderRegex()

func buildSectionHeaderRegex() *regexp.Regexp {
	alt := ""
	for i, name := range canonicalSections {
		if i > 0 {
			alt += "|"
		}
		alt += regexp.QuoteMeta(name)
	}
	// Up to six marker or whitespace characters may precede the name
	// (e.g. "*** "); header text is
	// matched case-insensitively and followed by a colon.
	return regexp.MustCompile(`(?im)^[*=\-:\s]{0,6}(` + alt + `)\s*:`)
}

// canonicalizeSectionHeaders rewrites every recognized header line to
// "CANONICAL NAME:" at the start of its line: the marker decoration is
// dropped and the name upper-cased, while everything after the colon is
// preserved verbatim.
func canonicalizeSectionHeaders(text string) string {
	return sectionHeaderRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := sectionHeaderRe.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		return strings.ToUpper(sub[1]) + ":"
	})
}
