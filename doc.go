// Package mddoc turns a Markdown document into a standalone HTML page and
// checks that the Go examples it contains still build and run.
//
// # Quick Start
//
//	conv := mddoc.NewConverter()
//	out, err := conv.Render(ctx, mddoc.RenderOptions{
//	    Input:     "guide.md",
//	    OutputDir: "doc",
//	})
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(int(mddoc.OutcomeOf(err)))
//	}
//
// # Document Format
//
// A document starts with one or more directive lines beginning with '%'.
// The first directive is the page title and is mandatory:
//
//	% Getting Started
//	% Jane Doe
//
//	Body text in Markdown...
//
// # Render Pipeline
//
// Render loads the input, loads the in-header, before-content and
// after-content fragment files, opens the output file, splits directives from
// the body, renders the body via Goldmark (GFM, syntax highlighting, table of
// contents) and writes the assembled page. Each stage has its own Outcome,
// which the mddoc CLI uses as its exit code.
//
// # Test Pipeline
//
// Test extracts every fenced code block tagged "go" and passes them, in
// document order, to a Harness. The default harness compiles and runs each
// example in a temporary module:
//
//	conv := mddoc.NewConverter(mddoc.WithTestThreads(4))
//	err := conv.Test(ctx, mddoc.TestOptions{
//	    Input: "guide.md",
//	    Libs:  []string{"../mylib"},
//	    Args:  []string{"--format", "terse"},
//	})
//
// Fence attributes refine how an example is treated:
//
//	```go,ignore         collected but skipped
//	```go,no_run         compiled, not run
//	```go,should_panic   passes when the program exits non-zero
//	```go,compile_fail   passes when the build fails
//
// A trailing "// Output:" comment, as in Go testable examples, makes the
// harness compare standard output.
package mddoc
