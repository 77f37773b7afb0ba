package mddoc

import (
	"context"

	"github.com/alnah/go-mddoc/internal/doctest"
)

// RenderOptions describes one render invocation.
type RenderOptions struct {
	Input         string   // source document (required)
	OutputDir     string   // directory receiving <stem>.html (must exist)
	Stylesheets   []string // stylesheet URLs, later ones override earlier
	InHeader      []string // files appended to <head>
	BeforeContent []string // files inserted before the title
	AfterContent  []string // files inserted at the end of <body>
	PlaygroundURL string   // empty = no playground
	DisableTOC    bool
}

// TestOptions describes one test invocation.
type TestOptions struct {
	Input string   // source document (required)
	Libs  []string // module directories made available to examples
	Args  []string // harness arguments, without the program-name token
}

// TestCase is a runnable example extracted from a document.
type TestCase = doctest.TestCase

// Harness executes extracted examples. It owns reporting and the
// pass/fail exit status; args[0] is the program-name token.
type Harness interface {
	Main(ctx context.Context, args []string, tests []TestCase)
}

// Compile-time interface implementation check.
var _ Harness = (*doctest.Harness)(nil)
