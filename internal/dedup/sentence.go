package dedup

import (
	"strings"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// sentenceDedup implements spec.md §4.2 phase 3: a sentence whose
// Jaccard similarity to an earlier-seen sentence (from any note) meets
// the threshold is dropped from the later note, preserving the earliest
// occurrence. A note left with no retained sentences is dropped
// entirely — its content is fully represented elsewhere.
func sentenceDedup(notes []model.NormalizedNote, threshold float64) ([]model.NormalizedNote, int) {
	var retainedTokens [][]string
	dropped := 0
	out := make([]model.NormalizedNote, 0, len(notes))

	for _, n := range notes {
		var keptSentences []string
		for _, s := range splitSentences(n.Text) {
			toks := tokenize(s)
			dup := false
			for _, rt := range retainedTokens {
				if jaccard(toks, rt) >= threshold {
					dup = true
					break
				}
			}
			if dup {
				dropped++
				continue
			}
			retainedTokens = append(retainedTokens, toks)
			keptSentences = append(keptSentences, s)
		}
		if len(keptSentences) == 0 {
			continue
		}
		n.Text = strings.Join(keptSentences, ". ") + "."
		out = append(out, n)
	}
	return out, dropped
}
