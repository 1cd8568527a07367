// Package errs defines the typed error taxonomy required at the
// external boundary (spec.md §6-7). Every failure the pipeline reports
// to a caller is one of these kinds; internal retries and fallbacks
// are expected to recover before an error ever surfaces.
package errs

import "fmt"

// Kind names one of the error taxonomy members from spec.md §6.
type Kind string

const (
	KindLLMSchema           Kind = "LLMSchemaError"
	KindLLMProvider          Kind = "LLMProviderError"
	KindExtraction           Kind = "ExtractionError"
	KindNarrativeParse       Kind = "NarrativeParseError"
	KindQualityThreshold     Kind = "QualityThresholdError"
	KindInvariantViolation   Kind = "InvariantViolationError"
)

// Error is the single error type used across the pipeline's external
// contract. Stage and Provider are optional context; FallbackAttempted
// records whether a recovery path was already tried before surfacing.
type Error struct {
	kind               Kind
	message            string
	stage              string
	provider           string
	fallbackAttempted  bool
	cause              error
}

// New constructs a pipeline error. stage and provider may be empty.
func New(kind Kind, stage, provider, message string, fallbackAttempted bool, cause error) *Error {
	return &Error{
		kind:              kind,
		message:           message,
		stage:             stage,
		provider:          provider,
		fallbackAttempted: fallbackAttempted,
		cause:             cause,
	}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s[%s]: %s: %v", e.kind, e.stage, e.message, e.cause)
	}
	return fmt.Sprintf("%s[%s]: %s", e.kind, e.stage, e.message)
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Stage() string { return e.stage }

func (e *Error) Provider() string { return e.provider }

func (e *Error) FallbackAttempted() bool { return e.fallbackAttempted }

// Is matches any *Error of the same kind, so
// errors.Is(err, errs.Sentinel(errs.KindLLMSchema)) tests for a kind;
// callers more commonly use errors.As(err, &target) to recover the
// concrete *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// Sentinel returns a zero-value *Error of the given kind, suitable for
// errors.Is comparisons in tests.
func Sentinel(kind Kind) *Error { return &Error{kind: kind} }
