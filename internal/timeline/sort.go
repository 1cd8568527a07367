package timeline

import (
	"sort"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// sortEvents orders events by ascending ISO date, sinking unknown-date
// events to the end in their original relative order (spec.md §4.7).
func sortEvents(events []model.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := events[i].Date, events[j].Date
		switch {
		case di == "" && dj == "":
			return false
		case di == "":
			return false
		case dj == "":
			return true
		default:
			return di < dj
		}
	})
}
