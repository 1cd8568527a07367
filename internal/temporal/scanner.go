package temporal

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// dictScanner wraps one Aho-Corasick automaton over a fixed phrase
// list, returning which phrase indices matched a window of text.
// Grounded on KittClouds-Go-Machine-n's implicit-matcher dictionary:
// one automaton serves as both the phrase list and the scanner.
type dictScanner struct {
	phrases []string
	ac      *ahocorasick.Automaton
}

func newDictScanner(phrases []string) (*dictScanner, error) {
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	automaton, err := ahocorasick.NewBuilder().
		AddStrings(lowered).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	return &dictScanner{phrases: lowered, ac: automaton}, nil
}

// matchedIndices returns the set of phrase indices found anywhere in
// window, matched case-insensitively.
func (s *dictScanner) matchedIndices(window string) map[int]bool {
	found := map[int]bool{}
	if s == nil || s.ac == nil {
		return found
	}
	haystack := []byte(strings.ToLower(window))
	for _, m := range s.ac.FindAllOverlapping(haystack) {
		found[m.PatternID] = true
	}
	return found
}
