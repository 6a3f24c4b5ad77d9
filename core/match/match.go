// core/match/match.go
package match

import (
	"fmt"

	"strmatch-core/trace"
)

// MaxTextLen caps the text size accepted by Validate.
const MaxTextLen = 20000

// Request is a validated (text, pattern) pair. Treat it as read-only: both
// matchers may share one Request without copying. Matching is byte-wise.
type Request struct {
	Text    string
	Pattern string
}

// Result is the outcome of one matcher run. Positions holds the offsets of
// every full match in increasing order; Steps is the emission-ordered trace.
type Result struct {
	Positions []int
	Steps     []trace.Step
}

// InvalidInputError reports why a (text, pattern) pair was rejected.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Reason }

// Validate gates raw inputs before either matcher runs. On success the
// returned Request satisfies 1 <= len(pattern) <= len(text) <= MaxTextLen;
// the matchers rely on that and perform no checks of their own.
func Validate(text, pattern string) (Request, error) {
	switch {
	case len(text) == 0:
		return Request{}, &InvalidInputError{Reason: "text must not be empty"}
	case len(pattern) == 0:
		return Request{}, &InvalidInputError{Reason: "pattern must not be empty"}
	case len(pattern) > len(text):
		return Request{}, &InvalidInputError{Reason: fmt.Sprintf("pattern length %d exceeds text length %d", len(pattern), len(text))}
	case len(text) > MaxTextLen:
		return Request{}, &InvalidInputError{Reason: fmt.Sprintf("text length %d exceeds maximum %d", len(text), MaxTextLen)}
	}
	return Request{Text: text, Pattern: pattern}, nil
}
