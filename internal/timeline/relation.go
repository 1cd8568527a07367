package timeline

import (
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/model"
)

const isoLayout = "2006-01-02"

// inferAnchors fills a missing admission or discharge anchor from the
// earliest/latest dated event, per spec.md §4.7's inference pass. The
// anchors themselves are never reported back on the Timeline; they only
// feed relation/daysSinceAdmission computation below.
func inferAnchors(anchors model.AnchorDates, events []model.TimelineEvent) model.AnchorDates {
	if anchors.Admission == nil {
		if t := earliestEventDate(events); t != nil {
			anchors.Admission = t
		}
	}
	if anchors.Discharge == nil {
		if t := latestEventDate(events); t != nil {
			anchors.Discharge = t
		}
	}
	return anchors
}

func earliestEventDate(events []model.TimelineEvent) *time.Time {
	var earliest *time.Time
	for _, e := range events {
		t, ok := parseISO(e.Date)
		if !ok {
			continue
		}
		if earliest == nil || t.Before(*earliest) {
			tCopy := t
			earliest = &tCopy
		}
	}
	return earliest
}

func latestEventDate(events []model.TimelineEvent) *time.Time {
	var latest *time.Time
	for _, e := range events {
		t, ok := parseISO(e.Date)
		if !ok {
			continue
		}
		if latest == nil || t.After(*latest) {
			tCopy := t
			latest = &tCopy
		}
	}
	return latest
}

func parseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// annotate fills DaysSinceAdmission and Relation on every dated event.
func annotate(events []model.TimelineEvent, anchors model.AnchorDates) {
	for i := range events {
		t, ok := parseISO(events[i].Date)
		if !ok {
			continue
		}
		if anchors.Admission != nil {
			days := int(t.Sub(*anchors.Admission).Hours() / 24)
			events[i].DaysSinceAdmission = &days
		}
		events[i].Relation = relationFor(t, anchors)
	}
}

func relationFor(t time.Time, anchors model.AnchorDates) model.EventRelation {
	if anchors.Admission != nil && t.Before(*anchors.Admission) {
		return model.RelationPreAdmission
	}

	var closest *time.Time
	for i := range anchors.Surgeries {
		s := anchors.Surgeries[i]
		if t.Equal(s) {
			return model.RelationIntraOp
		}
		if closest == nil || absDuration(t.Sub(s)) < absDuration(t.Sub(*closest)) {
			sCopy := s
			closest = &sCopy
		}
	}
	if closest == nil {
		return model.RelationPostOp
	}
	if t.Before(*closest) {
		return model.RelationPreOp
	}
	return model.RelationPostOp
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
