package dedup

import "github.com/orsinium-labs/stopwords"

var en = stopwords.MustGet("en")

// lexicalDiversity is the ratio of distinct non-stopword tokens to all
// non-stopword tokens, used as the information-density tie-break in spec.md §4.2
// phase 2 ("token count × lexical diversity").
func lexicalDiversity(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	distinct := make(map[string]struct{}, len(tokens))
	meaningful := 0
	for _, t := range tokens {
		if en.Contains(t) {
			continue
		}
		meaningful++
		distinct[t] = struct{}{}
	}
	if meaningful == 0 {
		return 0
	}
	return float64(len(distinct)) / float64(meaningful)
}

// informationDensity is token count weighted by lexical diversity, the
// tie-break metric spec.md §4.2 phase 2 uses to decide which of two
// near-duplicate notes to keep.
func informationDensity(tokens []string) float64 {
	return float64(len(tokens)) * lexicalDiversity(tokens)
}
