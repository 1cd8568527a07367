package dedup

import "github.com/ramihatou97/dcs-sub003/internal/model"

// complementMerge implements spec.md §4.2 phase 4: notes in the
// 0.30-0.60 similarity band are believed to describe the same encounter
// from different angles and are concatenated in chronological order.
// Conflicting sentences are never resolved here — both sides survive in
// the concatenated text, to be reconciled (or not) further downstream.
func complementMerge(notes []model.NormalizedNote, low, high float64) ([]model.NormalizedNote, int) {
	kept := make([]model.NormalizedNote, 0, len(notes))
	tokensCache := make([][]string, 0, len(notes))
	merged := 0

	for _, n := range notes {
		toks := tokenize(n.Text)
		target := -1
		for i := range kept {
			sim := jaccard(toks, tokensCache[i])
			if sim >= low && sim < high {
				target = i
				break
			}
		}
		if target >= 0 {
			kept[target] = mergeChronological(kept[target], n)
			tokensCache[target] = tokenize(kept[target].Text)
			merged++
			continue
		}
		kept = append(kept, n)
		tokensCache = append(tokensCache, toks)
	}
	return kept, merged
}

func mergeChronological(a, b model.NormalizedNote) model.NormalizedNote {
	first, second := a, b
	if notePrecedes(b, a) {
		first, second = b, a
	}
	merged := first
	merged.Text = first.Text + "\n" + second.Text
	return merged
}

// notePrecedes reports whether a was authored before b, falling back to
// input order when authored-date hints are unavailable.
func notePrecedes(a, b model.NormalizedNote) bool {
	if a.AuthoredAt != nil && b.AuthoredAt != nil {
		return a.AuthoredAt.Before(*b.AuthoredAt)
	}
	return a.SourceIndex < b.SourceIndex
}
