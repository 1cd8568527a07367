package dedup

import "strings"

// tokenize splits on whitespace and lowercases, matching the Jaccard
// comparison spec.md §4.2 phase 2 calls for ("whitespace tokens").
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

// tokenSet turns a token slice into a set for Jaccard comparison.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// jaccard computes |A∩B| / |A∪B| over two token sets.
func jaccard(a, b []string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// splitSentences does a lightweight split on sentence-ending punctuation,
// sufficient for clinical note prose (no abbreviation-aware NLP needed
// since the Normalizer has already standardized abbreviation spacing).
func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '\n'
	})
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
