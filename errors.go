package primerforge

import "github.com/pkg/errors"

// Kind classifies a primerforge error so callers (and the CLI layer) can
// decide how to react without string-matching messages.
type Kind int

const (
	// KindInvalidInput marks malformed configuration or unreadable input.
	KindInvalidInput Kind = iota
	// KindEmptyIntersection marks a shared-kmer resolution with no candidates.
	KindEmptyIntersection
	// KindNoPairsSurvive marks a pair set eliminated entirely by C8 or C9.
	KindNoPairsSurvive
	// KindIOError marks a failure writing the temp file or the result file.
	KindIOError
	// KindInternal marks a programming-error invariant violation.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindEmptyIntersection:
		return "empty intersection"
	case KindNoPairsSurvive:
		return "no pairs survive"
	case KindIOError:
		return "io error"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is a primerforge error tagged with a Kind.
type Error struct {
	Kind  Kind
	Stage string
	err   error
}

func (e *Error) Error() string {
	if e.Stage != "" {
		return e.Kind.String() + " (" + e.Stage + "): " + e.err.Error()
	}
	return e.Kind.String() + ": " + e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// newError wraps msg with errors.New so callers get a stack trace the same
// way the teacher's packages attach one via github.com/pkg/errors.
func newError(kind Kind, stage, msg string) *Error {
	return &Error{Kind: kind, Stage: stage, err: errors.New(msg)}
}

func wrapError(kind Kind, stage string, err error) *Error {
	return &Error{Kind: kind, Stage: stage, err: errors.WithStack(err)}
}

// IsKind reports whether err is a *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
