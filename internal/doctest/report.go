package doctest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// reporter writes the progress and summary of a run.
type reporter interface {
	start(count int)
	result(r Result)
	finish(s Summary, failures []Result, elapsed time.Duration)
}

func newReporter(format string, w io.Writer, nocapture bool) reporter {
	switch format {
	case FormatJSON:
		return &jsonReporter{enc: json.NewEncoder(w)}
	case FormatTerse:
		return &textReporter{w: w, terse: true, nocapture: nocapture}
	default:
		return &textReporter{w: w, nocapture: nocapture}
	}
}

// ---------------------------------------------------------------------------
// Text (pretty and terse)
// ---------------------------------------------------------------------------

// terseWidth is how many progress marks fit on one terse line.
const terseWidth = 88

type textReporter struct {
	w         io.Writer
	terse     bool
	nocapture bool
	column    int
}

func (r *textReporter) start(count int) {
	noun := "tests"
	if count == 1 {
		noun = "test"
	}
	fmt.Fprintf(r.w, "\nrunning %d %s\n", count, noun)
}

func (r *textReporter) result(res Result) {
	if r.terse {
		r.mark(res.Status)
		return
	}
	word := res.Status.String()
	if res.Status == StatusFailed {
		word = "FAILED"
	}
	fmt.Fprintf(r.w, "test %s ... %s\n", res.Test.Name, word)
	if r.nocapture && res.Status == StatusPassed {
		writeCaptured(r.w, res)
	}
}

func (r *textReporter) mark(s Status) {
	switch s {
	case StatusPassed:
		fmt.Fprint(r.w, ".")
	case StatusFailed:
		fmt.Fprint(r.w, "F")
	case StatusIgnored:
		fmt.Fprint(r.w, "i")
	}
	r.column++
	if r.column == terseWidth {
		fmt.Fprintln(r.w)
		r.column = 0
	}
}

func (r *textReporter) finish(s Summary, failures []Result, elapsed time.Duration) {
	if r.terse && r.column > 0 {
		fmt.Fprintln(r.w)
	}

	if len(failures) > 0 {
		fmt.Fprint(r.w, "\nfailures:\n\n")
		for _, f := range failures {
			fmt.Fprintf(r.w, "---- %s stdout ----\n", f.Test.Name)
			fmt.Fprintln(r.w, f.Reason)
			writeCaptured(r.w, f)
			fmt.Fprintln(r.w)
		}
		fmt.Fprint(r.w, "\nfailures:\n")
		for _, f := range failures {
			fmt.Fprintf(r.w, "    %s\n", f.Test.Name)
		}
	}

	fmt.Fprintf(r.w, "\n%s; finished in %.2fs\n\n", SummaryLine(s), elapsed.Seconds())
}

// SummaryLine is the final verdict line of a run.
func SummaryLine(s Summary) string {
	verdict := "ok"
	if !s.OK() {
		verdict = "FAILED"
	}
	return fmt.Sprintf("test result: %s. %d passed; %d failed; %d ignored; %d filtered out",
		verdict, s.Passed, s.Failed, s.Ignored, s.FilteredOut)
}

func writeCaptured(w io.Writer, res Result) {
	if res.Stdout != "" {
		fmt.Fprint(w, res.Stdout)
		if !strings.HasSuffix(res.Stdout, "\n") {
			fmt.Fprintln(w)
		}
	}
	if res.Stderr != "" {
		fmt.Fprint(w, res.Stderr)
		if !strings.HasSuffix(res.Stderr, "\n") {
			fmt.Fprintln(w)
		}
	}
}

// ---------------------------------------------------------------------------
// JSON lines
// ---------------------------------------------------------------------------

type jsonEvent struct {
	Type        string  `json:"type"`
	Event       string  `json:"event"`
	Name        string  `json:"name,omitempty"`
	TestCount   *int    `json:"test_count,omitempty"`
	Passed      *int    `json:"passed,omitempty"`
	Failed      *int    `json:"failed,omitempty"`
	Ignored     *int    `json:"ignored,omitempty"`
	FilteredOut *int    `json:"filtered_out,omitempty"`
	ExecTime    float64 `json:"exec_time,omitempty"`
	Stdout      string  `json:"stdout,omitempty"`
}

type jsonReporter struct {
	enc *json.Encoder
}

func (r *jsonReporter) start(count int) {
	_ = r.enc.Encode(jsonEvent{Type: "suite", Event: "started", TestCount: &count})
}

func (r *jsonReporter) result(res Result) {
	ev := jsonEvent{Type: "test", Name: res.Test.Name, ExecTime: res.Duration.Seconds()}
	switch res.Status {
	case StatusPassed:
		ev.Event = "ok"
	case StatusFailed:
		ev.Event = "failed"
		ev.Stdout = strings.TrimSpace(res.Reason + "\n" + res.Stdout + res.Stderr)
	case StatusIgnored:
		ev.Event = "ignored"
	}
	_ = r.enc.Encode(ev)
}

func (r *jsonReporter) finish(s Summary, _ []Result, elapsed time.Duration) {
	event := "ok"
	if !s.OK() {
		event = "failed"
	}
	_ = r.enc.Encode(jsonEvent{
		Type:        "suite",
		Event:       event,
		Passed:      &s.Passed,
		Failed:      &s.Failed,
		Ignored:     &s.Ignored,
		FilteredOut: &s.FilteredOut,
		ExecTime:    elapsed.Seconds(),
	})
}
