package normalizer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dateFormat pairs a regex that recognizes one raw date spelling with
// the time.Parse reference layout needed to parse it. Twelve formats
// are covered per spec.md §4.1; regexes are tried in order and the
// first match wins per position.
type dateFormat struct {
	re     *regexp.Regexp
	layout string
}

var dateFormats = []dateFormat{
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`), "1/2/2006"},
	{regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`), "2006-1-2"},
	{regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`), "1-2-2006"},
	{regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December) (\d{1,2}), (\d{4})\b`), "January 2, 2006"},
	{regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.? (\d{1,2}),? (\d{4})\b`), "Jan 2, 2006"},
	{regexp.MustCompile(`\b(\d{1,2}) (January|February|March|April|May|June|July|August|September|October|November|December) (\d{4})\b`), "2 January 2006"},
	{regexp.MustCompile(`\b(\d{1,2}) (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.? (\d{4})\b`), "2 Jan 2006"},
	{regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`), "1.2.2006"},
	{regexp.MustCompile(`\b(\d{4})/(\d{1,2})/(\d{1,2})\b`), "2006/1/2"},
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2})\b`), "1/2/06"},
	{regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December) (\d{1,2})(?:st|nd|rd|th)?,? (\d{4})\b`), "January 2, 2006"},
	{regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th) of (January|February|March|April|May|June|July|August|September|October|November|December),? (\d{4})\b`), "2 of January 2006"},
}

// isoDateRe matches an already-normalized ISO-8601 date. The
// canonicalizer does not read it: an ISO date is matched by the
// YYYY-M-D format and re-formatted to the same text.
var isoDateRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

// canonicalizeDates rewrites every recognized raw date spelling to
// ISO-8601 (YYYY-MM-DD), leaving already-ISO dates untouched. It never
// deletes text: a date expression that fails to parse is left as-is
// rather than silently dropped.
func canonicalizeDates(text string) string {
	for _, df := range dateFormats {
		text = df.re.ReplaceAllStringFunc(text, func(match string) string {
			t, err := parseWithLayout(df.layout, match, df.re)
			if err != nil {
				return match
			}
			return t.Format("2006-01-02")
		})
	}
	return text
}

// parseWithLayout normalizes month-name case before calling time.Parse,
// since source notes use mixed case ("OCT", "oct", "Oct").
func parseWithLayout(layout, raw string, re *regexp.Regexp) (time.Time, error) {
	cleaned := titleCaseMonths(raw)
	t, err := time.Parse(layout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q with layout %q: %w", raw, layout, err)
	}
	// Two-digit years in clinical notes are always 20xx in this domain;
	// time.Parse reads "69"-"99" as 19xx, so those move forward a century.
	if !strings.Contains(layout, "2006") && t.Year() < 2000 {
		t = t.AddDate(100, 0, 0)
	}
	return t, nil
}

var monthWords = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
}

var monthWordRe = regexp.MustCompile(`(?i)\b(` + joinAlternation(monthWords) + `)\b`)

func joinAlternation(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += "|"
		}
		out += w
	}
	return out
}

// titleCaseMonths rewrites month names to their canonical Title-case
// spelling so Go's reference-layout parser recognizes them regardless
// of the source note's casing.
func titleCaseMonths(s string) string {
	return monthWordRe.ReplaceAllStringFunc(s, func(m string) string {
		b := []byte(strings.ToLower(m))
		if len(b) > 0 && b[0] >= 'a' && b[0] <= 'z' {
			b[0] -= 'a' - 'A'
		}
		return string(b)
	})
}
