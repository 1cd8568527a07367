package normalizer

import "regexp"

// knownAbbreviations lists abbreviations whose interior whitespace
// is collapsed ("s / p" -> "s/p", "Hunt - Hess" -> "Hunt-Hess"). Each
// collapsed match is then replaced by its abbreviationCanonical
// spelling, which also fixes its letter case ("S/P" -> "s/p").
var knownAbbreviations = []string{
	`s\s*/\s*p`,
	`h\s*/\s*o`,
	`r\s*/\s*o`,
	`f\s*/\s*u`,
	`Hunt\s*-\s*Hess`,
	`s\s*/\s*s`,
}

var abbreviationRes = compileAbbreviations()

func compileAbbreviations() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(knownAbbreviations))
	for i, pat := range knownAbbreviations {
		res[i] = regexp.MustCompile(`(?i)` + pat)
	}
	return res
}

var abbreviationCanonical = map[string]string{
	"s/p": "s/p", "h/o": "h/o", "r/o": "r/o", "f/u": "f/u",
	"hunt-hess": "Hunt-Hess", "s/s": "s/s",
}

// standardizeAbbreviationSpacing rewrites every known abbreviation to
// its canonical spelling regardless of source spacing and case, since
// downstream temporal phrase matching is case folded but clinicians
// expect these markers rendered consistently.
func standardizeAbbreviationSpacing(text string) string {
	for _, re := range abbreviationRes {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			key := collapseInteriorSpace(m)
			canonical, ok := abbreviationCanonical[toLowerASCII(key)]
			if !ok {
				return key
			}
			return canonical
		})
	}
	return text
}

func collapseInteriorSpace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
