// Package timeline implements the Timeline Builder (spec.md §4.7):
// turning a merged ExtractionRecord's new_event entities into one
// chronologically ordered sequence, with reference mentions linked back
// to the event they refer to.
package timeline

import (
	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("timeline")

// Builder has no state; every request gets a fresh Timeline.
type Builder struct{}

// New returns a Builder.
func New() *Builder { return &Builder{} }

// Build assembles the Timeline from a merged ExtractionRecord.
func (b *Builder) Build(record model.ExtractionRecord, anchors model.AnchorDates) model.Timeline {
	entities := collectEntities(record)

	var events []model.TimelineEvent
	byName := map[string][]int{}
	referenceCount := 0

	for _, e := range entities {
		if e.TemporalContext.Kind != model.KindNewEvent {
			continue
		}
		name := nameOf(e)
		events = append(events, model.TimelineEvent{
			Date:        dateOf(e),
			Type:        e.Kind,
			Description: describe(e),
			POD:         e.TemporalContext.POD,
			Entity:      e,
		})
		byName[name] = append(byName[name], len(events)-1)
	}

	for _, e := range entities {
		if e.TemporalContext.Kind == model.KindNewEvent {
			continue
		}
		referenceCount++

		name := nameOf(e)
		candidates := byName[name]
		target := nearestPreceding(events, candidates, dateOf(e))
		if target < 0 {
			continue
		}
		events[target].Relationships = append(events[target].Relationships, model.NormalizedKey{
			Name: name,
			Date: dateOf(e),
		})
	}

	sortEvents(events)
	resolved := inferAnchors(anchors, events)
	annotate(events, resolved)

	log.Infow("timeline built",
		"events", len(events),
		"references", referenceCount,
	)
	return model.Timeline{Events: events, ReferenceCount: referenceCount}
}
