// Package normalizer implements the Text Normalizer (spec.md §4.1): it
// canonicalizes date formats to ISO-8601, unifies section headers,
// standardizes abbreviation spacing, and rewrites POD/HD notation.
// Normalization is information-preserving — it rewrites tokens, never
// deletes them — and idempotent: running it twice equals running it
// once (spec.md §8).
package normalizer

import (
	"regexp"
	"time"

	"github.com/ramihatou97/dcs-sub003/internal/logging"
	"github.com/ramihatou97/dcs-sub003/internal/model"
)

var log = logging.Component("normalizer")

// Normalize canonicalizes one ClinicalNote into a NormalizedNote.
func Normalize(note model.ClinicalNote, sourceIndex int) model.NormalizedNote {
	text := note.Text
	text = canonicalizeDates(text)
	text = canonicalizeSectionHeaders(text)
	text = standardizeAbbreviationSpacing(text)
	text = canonicalizePOD(text)

	return model.NormalizedNote{
		Text:        text,
		AuthoredAt:  note.AuthoredAt,
		SourceIndex: sourceIndex,
	}
}

// NormalizeAll normalizes every note in order, preserving input order.
func NormalizeAll(notes []model.ClinicalNote) []model.NormalizedNote {
	out := make([]model.NormalizedNote, len(notes))
	for i, n := range notes {
		out[i] = Normalize(n, i)
	}
	log.Infow("normalized notes", "count", len(notes))
	return out
}

var (
	admissionRe = regexp.MustCompile(`(?i)\badmission\b[^.\n]{0,40}?(\d{4}-\d{2}-\d{2})`)
	dischargeRe = regexp.MustCompile(`(?i)\bdischarg(?:e|ed)\b[^.\n]{0,40}?(\d{4}-\d{2}-\d{2})`)
	ictusRe     = regexp.MustCompile(`(?i)\bictus\b[^.\n]{0,40}?(\d{4}-\d{2}-\d{2})`)
	surgeryRe   = regexp.MustCompile(`(?i)\b(?:underwent|performed|surg(?:ery|ical procedure))\b[^.\n]{0,60}?(\d{4}-\d{2}-\d{2})`)
)

// ExtractAnchors scans the already-date-canonicalized notes for the
// admission, surgery, ictus, and discharge reference dates used
// downstream by the Temporal Analyzer and Timeline Builder (spec.md
// §4.1). It never fabricates a date: a field stays nil when no anchor
// phrase was found.
func ExtractAnchors(notes []model.NormalizedNote) model.AnchorDates {
	var anchors model.AnchorDates
	for _, n := range notes {
		if anchors.Admission == nil {
			if d := firstISODate(admissionRe, n.Text); d != nil {
				anchors.Admission = d
			}
		}
		if anchors.Discharge == nil {
			if d := firstISODate(dischargeRe, n.Text); d != nil {
				anchors.Discharge = d
			}
		}
		if anchors.Ictus == nil {
			if d := firstISODate(ictusRe, n.Text); d != nil {
				anchors.Ictus = d
			}
		}
		for _, m := range surgeryRe.FindAllStringSubmatch(n.Text, -1) {
			if d, err := time.Parse("2006-01-02", m[1]); err == nil {
				anchors.Surgeries = append(anchors.Surgeries, d)
			}
		}
	}
	return anchors
}

func firstISODate(re *regexp.Regexp, text string) *time.Time {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	d, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return nil
	}
	return &d
}
