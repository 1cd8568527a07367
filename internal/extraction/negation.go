package extraction

import (
	"regexp"
	"strings"
)

// negationCueRe matches a negation cue immediately preceding a
// candidate match. A fixed lookback window (not a full parse) is
// enough for the cues this corpus actually uses (spec.md §8 scenario
// 3: "no evidence of vasospasm", "denies headache").
var negationCueRe = regexp.MustCompile(`(?i)\b(?:no evidence of|denies|without|negative for|ruled out|not have|no signs? of)\s*$`)

// negationLookback is how many characters before a match start are
// inspected for a negation cue.
const negationLookback = 40

// isNegated reports whether the text immediately preceding [start,end)
// in fullText carries a negation cue.
func isNegated(fullText string, start int) bool {
	from := start - negationLookback
	if from < 0 {
		from = 0
	}
	window := fullText[from:start]
	return negationCueRe.MatchString(strings.TrimRight(window, " \t"))
}
