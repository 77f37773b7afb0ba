package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-mddoc"
)

// defaultDebounce coalesces bursts of file events in watch mode.
const defaultDebounce = 150 * time.Millisecond

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Harness  mddoc.Harness // nil = Go example harness
	Debounce time.Duration
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Debounce: defaultDebounce,
	}
}
