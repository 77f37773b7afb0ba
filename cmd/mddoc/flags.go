package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common        commonFlags
	output        string
	css           []string
	inHeader      []string
	beforeContent []string
	afterContent  []string
	playgroundURL string
	noTOC         bool
	watch         bool
}

// testFlags holds all flags for the test command.
type testFlags struct {
	common     commonFlags
	libs       []string
	testArgs   string
	threads    int
	threadsSet bool // --test-threads given; 0 is a valid value
	timeout    string
	goBin      string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and timing")
}

// newFlagSet returns a FlagSet that reports errors to the caller instead
// of printing them, and prints usage to w on -h/--help.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := newFlagSet("render", w, printRenderUsage)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"doc\")")
	fs.StringArrayVar(&f.css, "markdown-css", nil, "stylesheet URL (repeatable)")
	fs.StringArrayVar(&f.inHeader, "markdown-in-header", nil, "file appended to <head> (repeatable)")
	fs.StringArrayVar(&f.beforeContent, "markdown-before-content", nil, "file inserted before the title (repeatable)")
	fs.StringArrayVar(&f.afterContent, "markdown-after-content", nil, "file inserted after the content (repeatable)")
	fs.StringVar(&f.playgroundURL, "markdown-playground-url", "", "playground URL for runnable examples")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.BoolVar(&f.watch, "watch", false, "re-render when the input or fragments change")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	return f, fs.Args(), nil
}

// parseTestFlags parses test command flags.
// Arguments after "--" are returned separately as harness arguments.
func parseTestFlags(args []string, w io.Writer) (f *testFlags, positional, passthrough []string, err error) {
	fs := newFlagSet("test", w, printTestUsage)
	f = &testFlags{}

	fs.StringArrayVarP(&f.libs, "library-path", "L", nil, "module directory visible to examples (repeatable)")
	fs.StringVar(&f.testArgs, "test-args", "", "space separated harness arguments")
	fs.IntVar(&f.threads, "test-threads", 0, "examples run in parallel (0 = GOMAXPROCS)")
	fs.StringVar(&f.timeout, "timeout", "", "per-example timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.goBin, "go", "", "go command used to build examples")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, wrapFlagError(err)
	}
	f.threadsSet = fs.Changed("test-threads")

	rest := fs.Args()
	if dash := fs.ArgsLenAtDash(); dash >= 0 {
		return f, rest[:dash], rest[dash:], nil
	}
	return f, rest, nil, nil
}

// wrapFlagError marks parse failures as usage errors, leaving ErrHelp as is.
func wrapFlagError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidFlags, err)
}

// singleInput returns the one positional input argument.
func singleInput(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", ErrNoInput
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w, got %d", ErrTooManyInputs, len(positional))
	}
}
