package extraction

import (
	"strconv"
	"time"
)

// validateMRN enforces 6-10 digits and rejects anything that also
// parses as a date (spec.md §4.4).
func validateMRN(raw string) (string, bool) {
	digits := onlyDigits(raw)
	if len(digits) < 6 || len(digits) > 10 {
		return "", false
	}
	if looksLikeDate(raw) {
		return "", false
	}
	return digits, true
}

// validateAge enforces the clinically plausible range [0, 120].
func validateAge(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < 0 || n > 120 {
		return 0, false
	}
	return n, true
}

// validateDOBNotFuture rejects a date of birth in the future relative
// to the processing time supplied by the caller (injected so tests are
// deterministic rather than depending on time.Now()).
func validateDOBNotFuture(iso string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return false
	}
	return !d.After(now)
}

// validateScoreRange checks a numeric clinical score falls within its
// scale's valid range.
func validateScoreRange(value float64, min, max float64) bool {
	return value >= min && value <= max
}

func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func looksLikeDate(s string) bool {
	for _, layout := range []string{"2006-01-02", "1/2/2006", "1-2-2006"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// scoreRanges gives the valid [min,max] for each functional/clinical score.
var scoreRanges = map[string][2]float64{
	"huntHess":       {1, 5},
	"fisher":         {1, 4},
	"modifiedFisher": {0, 4},
	"gcsTotal":       {3, 15},
	"gcsE":           {1, 4},
	"gcsM":           {1, 6},
	"gcsV":           {1, 5},
	"mrs":            {0, 6},
	"kps":            {0, 100},
	"ecog":           {0, 5},
	"nihss":          {0, 42},
}
