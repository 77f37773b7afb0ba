package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/go-mddoc"
	"github.com/alnah/go-mddoc/internal/config"
	"github.com/alnah/go-mddoc/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input file specified")
	ErrTooManyInputs = errors.New("expected exactly one input file")
	ErrInvalidFlags  = errors.New("invalid flags")
)

// diagnose returns the one-line operator diagnostic for err, followed by
// hints when one applies. Library errors already read as diagnostics.
func diagnose(err error) string {
	var e *mddoc.Error
	if errors.As(err, &e) {
		return e.Error() + hintFor(e.Outcome)
	}

	msg := "error: " + err.Error()
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		msg += hints.ForConfigNotFound(notFound.Tried)
	}
	return msg
}

func hintFor(o mddoc.Outcome) string {
	switch o {
	case mddoc.OutcomeInputNotText:
		return hints.ForNotText()
	case mddoc.OutcomeFragmentLoadFailed:
		return hints.ForFragment()
	case mddoc.OutcomeOutputUnwritable:
		return hints.ForOutputDirectory()
	case mddoc.OutcomeMissingMetadata:
		return hints.ForMissingTitle()
	default:
		return ""
	}
}

// report writes the diagnostic for err and returns its exit code.
func report(w io.Writer, err error) int {
	fmt.Fprintln(w, diagnose(err))
	return exitCodeFor(err)
}

// newLogger returns the progress logger. Progress is shown with --verbose;
// otherwise only warnings reach the operator.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
