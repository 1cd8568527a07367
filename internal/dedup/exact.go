package dedup

import "github.com/ramihatou97/dcs-sub003/internal/model"

// exactDedup implements spec.md §4.2 phase 1: drop whole notes whose
// content hash was already seen, keeping the first occurrence.
func exactDedup(notes []model.NormalizedNote) ([]model.NormalizedNote, int) {
	seen := make(map[string]bool, len(notes))
	kept := make([]model.NormalizedNote, 0, len(notes))
	dropped := 0

	for _, n := range notes {
		h := contentHash(n.Text)
		if seen[h] {
			dropped++
			continue
		}
		seen[h] = true
		kept = append(kept, n)
	}
	return kept, dropped
}
