package main

import (
	"errors"

	"github.com/alnah/go-mddoc"
	"github.com/alnah/go-mddoc/internal/config"
	"github.com/alnah/go-mddoc/internal/doctest"
)

// Exit codes for the mddoc CLI.
// Codes 1-6 are the render outcomes; usage errors use sysexits EX_USAGE so
// they never collide with them.
const (
	ExitSuccess          = 0
	ExitInputUnreadable  = 1
	ExitInputNotText     = 2
	ExitFragmentFailed   = 3
	ExitOutputUnwritable = 4
	ExitMissingMetadata  = 5
	ExitWriteFailed      = 6
	ExitUsage            = 64
	ExitTestsFailed      = doctest.ExitTestsFailed
)

// exitCodeFor returns the exit code for an error returned by a command.
// CLI and config errors are usage errors; everything else is classified by
// the outcome it carries.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyInputs) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, mddoc.ErrEmptyInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) {
		return ExitUsage
	}

	switch mddoc.OutcomeOf(err) {
	case mddoc.OutcomeSuccess:
		return ExitSuccess
	case mddoc.OutcomeInputUnreadable:
		return ExitInputUnreadable
	case mddoc.OutcomeInputNotText:
		return ExitInputNotText
	case mddoc.OutcomeFragmentLoadFailed:
		return ExitFragmentFailed
	case mddoc.OutcomeOutputUnwritable:
		return ExitOutputUnwritable
	case mddoc.OutcomeMissingMetadata:
		return ExitMissingMetadata
	case mddoc.OutcomeWriteFailed:
		return ExitWriteFailed
	default:
		return ExitInputUnreadable
	}
}
