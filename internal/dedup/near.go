package dedup

import "github.com/ramihatou97/dcs-sub003/internal/model"

// nearDedup implements spec.md §4.2 phase 2: two notes whose whitespace
// token sets exceed the Jaccard threshold are treated as near-duplicates;
// the one with higher information density (token count × lexical
// diversity) is kept.
func nearDedup(notes []model.NormalizedNote, threshold float64) ([]model.NormalizedNote, int) {
	kept := make([]model.NormalizedNote, 0, len(notes))
	tokensCache := make([][]string, 0, len(notes))
	dropped := 0

	for _, n := range notes {
		toks := tokenize(n.Text)
		replaced := false
		for i := range kept {
			if jaccard(toks, tokensCache[i]) >= threshold {
				if informationDensity(toks) > informationDensity(tokensCache[i]) {
					kept[i] = n
					tokensCache[i] = toks
				}
				dropped++
				replaced = true
				break
			}
		}
		if !replaced {
			kept = append(kept, n)
			tokensCache = append(tokensCache, toks)
		}
	}
	return kept, dropped
}
