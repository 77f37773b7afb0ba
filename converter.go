package mddoc

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-mddoc/internal/doctest"
	"github.com/alnah/go-mddoc/internal/pipeline"
)

// bodyRenderer renders a document body to an HTML fragment.
type bodyRenderer interface {
	ResetHeaders()
	RenderBody(ctx context.Context, text string, opts pipeline.BodyOptions) (string, error)
}

// Compile-time interface implementation check.
var _ bodyRenderer = (*pipeline.Renderer)(nil)

// converterConfig holds settings of the default harness.
type converterConfig struct {
	stdout         io.Writer
	goBin          string
	threads        int
	exampleTimeout time.Duration
	exit           func(int)
}

// Converter runs the render and test pipelines.
// Create with NewConverter. A Converter renders one document at a time.
type Converter struct {
	cfg      converterConfig
	renderer bodyRenderer
	harness  Harness
}

// Option configures a Converter.
type Option func(*Converter)

// defaultExampleTimeout bounds a single example run.
const defaultExampleTimeout = 60 * time.Second

// NewConverter creates a Converter with the goldmark body renderer and the
// Go example harness.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			stdout:         os.Stdout,
			goBin:          "go",
			exampleTimeout: defaultExampleTimeout,
			exit:           os.Exit,
		},
		renderer: pipeline.NewRenderer(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.harness == nil {
		runner := &doctest.GoRunner{GoBin: c.cfg.goBin, Timeout: c.cfg.exampleTimeout}
		h := doctest.NewHarness(runner)
		h.Stdout = c.cfg.stdout
		h.Threads = c.cfg.threads
		h.Exit = c.cfg.exit
		c.harness = h
	}

	return c
}

// WithHarness replaces the example harness.
func WithHarness(h Harness) Option {
	return func(c *Converter) {
		c.harness = h
	}
}

// WithTestOutput sets where the default harness writes its report.
func WithTestOutput(w io.Writer) Option {
	return func(c *Converter) {
		c.cfg.stdout = w
	}
}

// WithGoBinary sets the go command used to build and run examples.
func WithGoBinary(path string) Option {
	return func(c *Converter) {
		if path != "" {
			c.cfg.goBin = path
		}
	}
}

// WithTestThreads sets how many examples run in parallel (0 = GOMAXPROCS).
func WithTestThreads(n int) Option {
	return func(c *Converter) {
		c.cfg.threads = n
	}
}

// WithExampleTimeout bounds each example run.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithExampleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mddoc: WithExampleTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.exampleTimeout = d
	}
}

// WithExitFunc replaces the function the default harness calls to end the
// process when examples fail.
func WithExitFunc(exit func(int)) Option {
	return func(c *Converter) {
		c.cfg.exit = exit
	}
}
