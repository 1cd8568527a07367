// Package temporal implements the Temporal Analyzer (spec.md §4.3): it
// classifies a mention's kind (new_event, reference, continuation) and
// category (PAST, PRESENT, ADMISSION, ...), and resolves POD notation
// to a calendar date against known surgery anchors.
package temporal

import (
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

// WindowSize is how far on each side of a match span the analyzer
// inspects for phrase and category cues (spec.md §4.3).
const WindowSize = 200

// Analyzer classifies temporal context for extracted mentions.
type Analyzer struct {
	phraseScanner   *dictScanner
	categoryScanner *dictScanner
	categoryByIndex []model.TemporalCategory
	phraseByIndex   []phraseKind
	log             *zapSugar
}

type zapSugar = interface {
	Debugw(msg string, kv ...interface{})
}

// NewAnalyzer builds the phrase and category dictionaries once; reuse
// the same Analyzer across an entire generation request.
func NewAnalyzer() (*Analyzer, error) {
	phrases := make([]string, len(referenceAndEventPhrases))
	kinds := make([]phraseKind, len(referenceAndEventPhrases))
	for i, e := range referenceAndEventPhrases {
		phrases[i] = e.phrase
		kinds[i] = e.kind
	}
	phraseScanner, err := newDictScanner(phrases)
	if err != nil {
		return nil, err
	}

	catPhrases := make([]string, len(categoryKeywords))
	cats := make([]model.TemporalCategory, len(categoryKeywords))
	for i, e := range categoryKeywords {
		catPhrases[i] = e.phrase
		cats[i] = e.category
	}
	categoryScanner, err := newDictScanner(catPhrases)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		phraseScanner:   phraseScanner,
		categoryScanner: categoryScanner,
		categoryByIndex: cats,
		phraseByIndex:   kinds,
		log:             logging.Component("temporal"),
	}, nil
}

// Input bundles what the Pattern Extractor and LLM Adapter supply
// about a single mention.
type Input struct {
	// Window is the ±200-character text surrounding the match.
	Window string
	// ExplicitDate, when non-nil, is a date literally present in the
	// mention text (e.g. "on 10/16/2025"); it takes precedence over
	// POD resolution.
	ExplicitDate *time.Time
	// ExplicitPOD, when non-nil, is a POD# literally present in the
	// mention text (e.g. "POD#3").
	ExplicitPOD *int
	// NoteDate, when non-nil, is the authored date of the note the
	// mention came from. It scopes POD resolution to the surgery
	// preceding this note rather than any surgery mentioned later in
	// the input, when the caller supplied it.
	NoteDate *time.Time
	Anchors  model.AnchorDates
}

// Analyze returns the TemporalContext for one mention (spec.md §4.3).
func (a *Analyzer) Analyze(in Input) model.TemporalContext {
	kind, confidence := a.classifyKind(in.Window)
	category, secondary := a.classifyCategory(in.Window)

	ctx := model.TemporalContext{
		Category:          category,
		Kind:              kind,
		POD:               in.ExplicitPOD,
		Confidence:         confidence,
		SecondaryCategory:  secondary,
	}

	switch {
	case in.ExplicitDate != nil:
		ctx.ResolvedDate = in.ExplicitDate
	case in.ExplicitPOD != nil:
		ctx.ResolvedDate = resolvePOD(*in.ExplicitPOD, in.Anchors, in.NoteDate)
		if ctx.ResolvedDate == nil {
			a.log.Debugw("POD without surgery anchor, leaving date unresolved", "pod", *in.ExplicitPOD)
		}
	}

	return ctx
}

// classifyKind applies the phrase-precedence rules in spec.md §4.3:
// a current-day marker overrides reference phrasing ("s/p coiling
// today" -> new_event); otherwise reference > new_event > continuation
// in the order the spec lists them, with new_event phrases taking
// precedence over continuation when both are present.
func (a *Analyzer) classifyKind(window string) (model.MentionKind, float64) {
	matched := a.phraseScanner.matchedIndices(window)
	if len(matched) == 0 {
		return model.KindReference, 0.5
	}

	sawReference := false
	sawNewEvent := false
	sawContinuation := false
	sawCurrentDay := false

	for idx := range matched {
		switch a.phraseByIndex[idx] {
		case phraseReference:
			sawReference = true
		case phraseNewEvent:
			sawNewEvent = true
		case phraseContinuation:
			sawContinuation = true
		case phraseCurrentDay:
			sawCurrentDay = true
		}
	}

	if sawCurrentDay {
		return model.KindNewEvent, 0.9
	}
	if sawReference {
		return model.KindReference, 0.85
	}
	if sawNewEvent {
		return model.KindNewEvent, 0.85
	}
	if sawContinuation {
		return model.KindContinuation, 0.8
	}
	return model.KindReference, 0.5
}

// classifyCategory returns the primary category and, if the window
// matched two conflicting categories, a secondary one recorded at
// lower confidence rather than silently discarded (spec.md §4.3).
func (a *Analyzer) classifyCategory(window string) (model.TemporalCategory, *model.TemporalCategory) {
	matched := a.categoryScanner.matchedIndices(window)
	if len(matched) == 0 {
		return model.CategoryUnknown, nil
	}

	var cats []model.TemporalCategory
	for idx := range a.categoryByIndex {
		if matched[idx] {
			cats = append(cats, a.categoryByIndex[idx])
		}
	}

	primary := cats[0]
	if len(cats) == 1 {
		return primary, nil
	}
	// Multiple categories matched: prefer the first non-Unknown match
	// deterministically by dictionary order, record the rest as
	// conflicting. This keeps classification reproducible across runs
	// given identical input (spec.md §8 determinism invariant).
	best := cats[0]
	for _, c := range cats[1:] {
		if c != best {
			secondary := c
			return best, &secondary
		}
	}
	return best, nil
}

// resolvePOD resolves a POD# to a calendar date against the closest
// preceding surgery anchor. When noteDate is known, "preceding" means
// the latest surgery on or before noteDate, since POD notation refers
// to days since the operation the authoring note followed, not one
// documented later in the input. When noteDate is nil (the caller did
// not supply AuthoredAt for this note), resolution falls back to the
// latest surgery known anywhere in the input. Ties (identical dates)
// prefer the earliest-listed surgery (spec.md §4.3). Returns nil
// without fabricating a date when no eligible surgery anchor exists.
func resolvePOD(pod int, anchors model.AnchorDates, noteDate *time.Time) *time.Time {
	if len(anchors.Surgeries) == 0 {
		return nil
	}

	candidates := anchors.Surgeries
	if noteDate != nil {
		var preceding []time.Time
		for _, s := range anchors.Surgeries {
			if !s.After(*noteDate) {
				preceding = append(preceding, s)
			}
		}
		if len(preceding) > 0 {
			candidates = preceding
		}
	}

	best := candidates[0]
	for _, s := range candidates[1:] {
		if s.After(best) {
			best = s
		}
	}
	resolved := best.AddDate(0, 0, pod)
	return &resolved
}
