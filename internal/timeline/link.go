package timeline

import "github.com/ramihatou97/dcs-sub003/internal/model"

// nearestPreceding picks, among candidates (indices into events sharing a
// reference's normalized name), the one whose date is the closest that
// does not come after refDate (spec.md §4.7: references resolve to an
// existing new_event by normalized-name, nearest-preceding-date). When
// refDate is unknown it falls back to the most recently registered
// candidate for that name, and when nothing precedes refDate to the
// first registered one, so every reference still links to something
// rather than being dropped.
func nearestPreceding(events []model.TimelineEvent, candidates []int, refDate string) int {
	if len(candidates) == 0 {
		return -1
	}
	if refDate == "" {
		return candidates[len(candidates)-1]
	}

	best := -1
	var bestDate string
	for _, idx := range candidates {
		d := events[idx].Date
		if d == "" || d > refDate {
			continue
		}
		if best == -1 || d > bestDate {
			best = idx
			bestDate = d
		}
	}
	if best == -1 {
		return candidates[0]
	}
	return best
}
