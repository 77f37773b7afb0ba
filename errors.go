package mddoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrNotText      = errors.New("not UTF-8")
	ErrMissingTitle = errors.New("invalid markdown file: expecting initial line with `% ...TITLE...`")
	ErrEmptyInput   = errors.New("input path cannot be empty")
)

// Outcome classifies how a render or test invocation ended.
// Values are the process exit codes of the mddoc CLI.
type Outcome int

// Render outcomes, in exit code order.
const (
	OutcomeSuccess            Outcome = iota // 0
	OutcomeInputUnreadable                   // 1
	OutcomeInputNotText                      // 2
	OutcomeFragmentLoadFailed                // 3
	OutcomeOutputUnwritable                  // 4
	OutcomeMissingMetadata                   // 5
	OutcomeWriteFailed                       // 6
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInputUnreadable:
		return "input unreadable"
	case OutcomeInputNotText:
		return "input not text"
	case OutcomeFragmentLoadFailed:
		return "fragment load failed"
	case OutcomeOutputUnwritable:
		return "output unwritable"
	case OutcomeMissingMetadata:
		return "missing metadata"
	case OutcomeWriteFailed:
		return "write failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Error is the failure returned by every stage of the render and test
// pipelines. Its message is the operator diagnostic for the failure.
type Error struct {
	Outcome Outcome
	Path    string // offending file, empty for MissingMetadata
	Err     error  // underlying cause
}

func (e *Error) Error() string {
	switch e.Outcome {
	case OutcomeInputUnreadable, OutcomeInputNotText, OutcomeFragmentLoadFailed:
		return fmt.Sprintf("error reading `%s`: %v", e.Path, e.Err)
	case OutcomeOutputUnwritable:
		return fmt.Sprintf("error opening `%s` for writing: %v", e.Path, e.Err)
	case OutcomeWriteFailed:
		return fmt.Sprintf("error writing to `%s`: %v", e.Path, e.Err)
	case OutcomeMissingMetadata:
		return ErrMissingTitle.Error()
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Outcome.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OutcomeOf extracts the outcome carried by err.
// Returns OutcomeSuccess for nil. Errors that carry no *Error (such as
// ErrEmptyInput or a canceled context) map to OutcomeInputUnreadable.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Outcome
	}
	return OutcomeInputUnreadable
}
