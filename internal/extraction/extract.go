// Package extraction implements the Pattern Extractor (spec.md §4.4):
// regex/dictionary extraction with a confidence score and post-match
// validator per field, attaching a TemporalContext to every emission
// via the Temporal Analyzer.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/temporal"
)

// podInlineRe finds the Normalizer's canonical "POD#<n>" notation
// within a window, so the extractor can pass an explicit POD straight
// through to the Temporal Analyzer instead of relying solely on
// phrase-dictionary classification.
var podInlineRe = regexp.MustCompile(`POD#(\d+)`)

// explicitDateNear finds an ISO date already present within a window,
// distinct from a POD-resolved date (spec.md §4.3: an explicit date
// always takes precedence over POD resolution).
var explicitDateRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

func explicitDateNear(text string, start, end int) *time.Time {
	m := explicitDateRe.FindStringSubmatch(nearby(text, start, end))
	if m == nil {
		return nil
	}
	d, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return nil
	}
	return &d
}

var log = logging.Component("extraction")

// Extractor runs the full pattern catalogue over normalized notes.
type Extractor struct {
	analyzer *temporal.Analyzer
	now      time.Time // injected for deterministic DOB-not-future validation
}

// New builds an Extractor with its own Temporal Analyzer.
func New(now time.Time) (*Extractor, error) {
	analyzer, err := temporal.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	return &Extractor{analyzer: analyzer, now: now}, nil
}

// Extract runs every pattern family over every note and returns one
// PartialExtraction (spec.md §4.4, §4.6).
func (e *Extractor) Extract(notes []model.NormalizedNote, anchors model.AnchorDates) model.PartialExtraction {
	result := model.NewPartialExtraction("pattern")

	for _, note := range notes {
		e.extractDemographics(note, &result)
		e.extractDates(note, &result)
		e.extractScores(note, anchors, &result)
		e.extractProcedures(note, anchors, &result)
		e.extractComplications(note, anchors, &result)
		e.extractMedications(note, anchors, &result)
		e.extractImaging(note, anchors, &result)
		e.extractConsultations(note, anchors, &result)
		e.extractDisposition(note, anchors, &result)
		e.extractFollowUps(note, anchors, &result)
	}
	e.computeFunctionalScores(notes, anchors, &result)

	log.Infow("pattern extraction complete",
		"procedures", len(result.Procedures),
		"complications", len(result.Complications),
		"medications", len(result.Medications),
	)
	return result
}

// window returns the ±temporal.WindowSize text around [start,end).
func window(text string, start, end int) string {
	from := start - temporal.WindowSize
	if from < 0 {
		from = 0
	}
	to := end + temporal.WindowSize
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

func (e *Extractor) analyze(note model.NormalizedNote, start, end int, anchors model.AnchorDates, explicitPOD *int, explicitDate *time.Time) model.TemporalContext {
	return e.analyzer.Analyze(temporal.Input{
		Window:       window(note.Text, start, end),
		ExplicitDate: explicitDate,
		ExplicitPOD:  explicitPOD,
		NoteDate:     note.AuthoredAt,
		Anchors:      anchors,
	})
}

// nearby returns a tight window around a match (20 characters before
// it, nearbySpan characters after it), distinct from the wider ±200-char temporal window: used to decide
// whether an explicit date or POD belongs to THIS specific mention
// rather than some other one sharing the same note.
const nearbySpan = 50

func nearby(text string, start, end int) string {
	from := start - 20
	if from < 0 {
		from = 0
	}
	to := end + nearbySpan
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

func explicitPODNear(text string, start, end int) *int {
	m := podInlineRe.FindStringSubmatch(nearby(text, start, end))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func span(note model.NormalizedNote, start, end int) model.SourceSpan {
	return model.SourceSpan{NoteIndex: note.SourceIndex, Start: start, End: end, Text: note.Text[start:end]}
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
