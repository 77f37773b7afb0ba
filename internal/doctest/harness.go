package doctest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-mddoc/internal/hints"
)

// ExitTestsFailed is the status the harness ends the process with when an
// example fails or its arguments are invalid.
const ExitTestsFailed = 101

// Report formats.
const (
	FormatPretty = "pretty"
	FormatTerse  = "terse"
	FormatJSON   = "json"
)

// Status is the verdict on one example.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusIgnored
)

// String returns the word used in reports.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Result is the verdict on one example with what it printed.
type Result struct {
	Test     TestCase
	Status   Status
	Reason   string // why it failed, "" otherwise
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Summary counts the outcomes of a run.
type Summary struct {
	Passed      int
	Failed      int
	Ignored     int
	FilteredOut int
}

// OK reports whether nothing failed.
func (s Summary) OK() bool { return s.Failed == 0 }

// Harness runs extracted examples and reports on them like a test binary.
// Create with NewHarness and adjust the exported fields before calling Main.
type Harness struct {
	Stdout  io.Writer // report destination
	Threads int       // parallel examples, 0 = GOMAXPROCS
	Exit    func(int) // called with a non-zero status

	runner Runner
}

// NewHarness creates a harness that runs examples with runner.
func NewHarness(runner Runner) *Harness {
	return &Harness{
		Stdout: os.Stdout,
		Exit:   os.Exit,
		runner: runner,
	}
}

// Main runs tests according to args, whose first element is the program
// name, and ends the process through Exit when the status is non-zero.
func (h *Harness) Main(ctx context.Context, args []string, tests []TestCase) {
	if code := h.Run(ctx, args, tests); code != 0 {
		h.Exit(code)
	}
}

// Run is Main without the exit: it returns 0 when every selected example
// passed and ExitTestsFailed otherwise.
func (h *Harness) Run(ctx context.Context, args []string, tests []TestCase) int {
	opts, err := parseArgs(args, h.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(h.Stdout, "error: %v\n", err)
		return ExitTestsFailed
	}

	plan := opts.plan(tests)
	if opts.list {
		listTests(h.Stdout, plan)
		return 0
	}

	threads := opts.threads
	if threads <= 0 {
		threads = h.Threads
	}
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	rep := newReporter(opts.format, h.Stdout, opts.nocapture)
	rep.start(len(plan.run))

	start := time.Now()
	summary := Summary{FilteredOut: plan.filteredOut}
	var failures []Result
	for res := range h.execute(ctx, plan.run, threads) {
		switch res.Status {
		case StatusPassed:
			summary.Passed++
		case StatusFailed:
			summary.Failed++
			failures = append(failures, res)
		case StatusIgnored:
			summary.Ignored++
		}
		rep.result(res)
	}
	rep.finish(summary, failures, time.Since(start))

	if !summary.OK() {
		return ExitTestsFailed
	}
	return 0
}

// planned is a selected example and whether it runs or is reported ignored.
type planned struct {
	test TestCase
	skip bool
}

type testPlan struct {
	run         []planned
	filteredOut int
}

// execute runs the plan with at most threads examples in flight and yields
// results in plan order as soon as each becomes available.
func (h *Harness) execute(ctx context.Context, plan []planned, threads int) func(func(Result) bool) {
	return func(yield func(Result) bool) {
		results := make([]Result, len(plan))
		done := make([]chan struct{}, len(plan))
		for i := range done {
			done[i] = make(chan struct{})
		}

		var g errgroup.Group
		g.SetLimit(threads)
		go func() {
			for i, p := range plan {
				if p.skip {
					results[i] = Result{Test: p.test, Status: StatusIgnored}
					close(done[i])
					continue
				}
				g.Go(func() error {
					defer close(done[i])
					results[i] = h.runOne(ctx, p.test)
					return nil
				})
			}
		}()

		for i := range plan {
			<-done[i]
			if !yield(results[i]) {
				// Drain so in-flight examples are not abandoned mid-write.
				for _, ch := range done[i+1:] {
					<-ch
				}
				return
			}
		}
		_ = g.Wait()
	}
}

func (h *Harness) runOne(ctx context.Context, tc TestCase) Result {
	if err := ctx.Err(); err != nil {
		return Result{Test: tc, Status: StatusFailed, Reason: err.Error()}
	}
	ex, err := h.runner.Run(ctx, tc)
	if err != nil {
		reason := err.Error()
		if errors.Is(err, ErrGoNotFound) {
			reason += hints.ForGoToolchain()
		}
		return Result{Test: tc, Status: StatusFailed, Reason: reason, Duration: ex.Duration}
	}
	status, reason := Judge(tc, ex)
	return Result{
		Test:     tc,
		Status:   status,
		Reason:   reason,
		Stdout:   ex.Stdout,
		Stderr:   ex.Stderr,
		Duration: ex.Duration,
	}
}

// Judge decides whether an execution satisfies the example's attributes and
// expected output. The reason is empty when the example passed.
func Judge(tc TestCase, ex Execution) (Status, string) {
	switch {
	case ex.TimedOut:
		return StatusFailed, "test timed out" + hints.ForTimeout()
	case tc.CompileFail:
		if ex.BuildFailed {
			return StatusPassed, ""
		}
		return StatusFailed, "test compiled successfully, but it's marked `compile_fail`"
	case ex.BuildFailed:
		return StatusFailed, "couldn't compile the test"
	case !ex.Ran:
		return StatusPassed, ""
	case tc.ShouldPanic:
		if ex.ExitCode != 0 && strings.Contains(ex.Stderr, "panic:") {
			return StatusPassed, ""
		}
		return StatusFailed, "test did not panic as expected"
	case ex.ExitCode != 0:
		return StatusFailed, fmt.Sprintf("test exited with status %d", ex.ExitCode)
	case tc.HasOutput:
		if got := normalizeOutput(ex.Stdout); got != tc.WantOutput {
			return StatusFailed, fmt.Sprintf("output mismatch\ngot:\n%s\nwant:\n%s", got, tc.WantOutput)
		}
	}
	return StatusPassed, ""
}

// normalizeOutput trims each line and the whole text, matching how expected
// output is read from comments.
func normalizeOutput(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func listTests(w io.Writer, plan testPlan) {
	for _, p := range plan.run {
		fmt.Fprintf(w, "%s: test\n", p.test.Name)
	}
	fmt.Fprintf(w, "\n%d tests\n", len(plan.run))
}

// ---------------------------------------------------------------------------
// Arguments
// ---------------------------------------------------------------------------

type harnessOptions struct {
	filters        []string
	exact          bool
	skip           []string
	ignored        bool
	includeIgnored bool
	list           bool
	format         string
	quiet          bool
	threads        int
	nocapture      bool
}

// parseArgs parses a harness argument vector. args[0] is the program name.
func parseArgs(args []string, out io.Writer) (harnessOptions, error) {
	name := ProgramName
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	var opts harnessOptions
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [OPTIONS] [FILTERS...]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.exact, "exact", false, "Match filters exactly instead of by substring")
	fs.StringArrayVar(&opts.skip, "skip", nil, "Skip examples whose name matches (repeatable)")
	fs.BoolVar(&opts.ignored, "ignored", false, "Run only ignored examples")
	fs.BoolVar(&opts.includeIgnored, "include-ignored", false, "Run ignored and not ignored examples")
	fs.BoolVar(&opts.list, "list", false, "List examples instead of running them")
	fs.StringVar(&opts.format, "format", FormatPretty, "Output format: pretty, terse, json")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Terse output (same as --format terse)")
	fs.IntVar(&opts.threads, "test-threads", 0, "Number of examples run in parallel")
	fs.BoolVar(&opts.nocapture, "nocapture", false, "Show output of passing examples too")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.filters = fs.Args()

	if opts.quiet {
		opts.format = FormatTerse
	}
	switch opts.format {
	case FormatPretty, FormatTerse, FormatJSON:
	default:
		return opts, fmt.Errorf("argument for --format must be pretty, terse, or json (was %s)", opts.format)
	}
	if opts.ignored && opts.includeIgnored {
		return opts, errors.New("--ignored and --include-ignored are mutually exclusive")
	}
	if opts.threads < 0 {
		return opts, fmt.Errorf("argument for --test-threads must be a positive integer (was %d)", opts.threads)
	}
	return opts, nil
}

// plan selects the examples to report on, in document order.
func (o harnessOptions) plan(tests []TestCase) testPlan {
	var p testPlan
	for _, tc := range tests {
		if !o.selected(tc) {
			p.filteredOut++
			continue
		}
		switch {
		case o.ignored && !tc.Ignore:
			p.filteredOut++
		case o.ignored, o.includeIgnored:
			p.run = append(p.run, planned{test: tc})
		default:
			p.run = append(p.run, planned{test: tc, skip: tc.Ignore})
		}
	}
	return p
}

func (o harnessOptions) selected(tc TestCase) bool {
	if len(o.filters) > 0 && !o.matchAny(o.filters, tc.Name) {
		return false
	}
	return !o.matchAny(o.skip, tc.Name)
}

func (o harnessOptions) matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if o.exact && name == p || !o.exact && strings.Contains(name, p) {
			return true
		}
	}
	return false
}
