package merge

import "github.com/ramihatou97/dcs-sub003/internal/model"

// mergeTemporalContext implements spec.md §4.6's propagation rule: a
// reference mark sticks unless the other source marks the same item a
// new_event at higher confidence.
func mergeTemporalContext(a, b model.TemporalContext) model.TemporalContext {
	aRef := a.Kind == model.KindReference
	bRef := b.Kind == model.KindReference

	if aRef && !bRef {
		if b.Kind == model.KindNewEvent && b.Confidence > a.Confidence {
			return b
		}
		return a
	}
	if bRef && !aRef {
		if a.Kind == model.KindNewEvent && a.Confidence > b.Confidence {
			return a
		}
		return b
	}
	if aRef && bRef {
		return a
	}

	if b.Confidence > a.Confidence {
		return b
	}
	return a
}
