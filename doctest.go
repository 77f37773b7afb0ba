package mddoc

import (
	"context"

	"github.com/alnah/go-mddoc/internal/doctest"
)

// Test extracts the examples of opts.Input and hands them to the harness.
//
// The whole text is scanned, directive lines included; the extractor ignores
// them. Only loading can fail here (OutcomeInputUnreadable,
// OutcomeInputNotText). Once the harness is invoked Test returns nil: whether
// the examples passed is reported by the harness through its own channel.
func (c *Converter) Test(ctx context.Context, opts TestOptions) error {
	if opts.Input == "" {
		return ErrEmptyInput
	}

	text, err := LoadText(opts.Input)
	if err != nil {
		return err
	}

	collector := doctest.NewCollector(opts.Input, opts.Libs)
	collector.Add(doctest.Extract(text)...)

	args := make([]string, 0, len(opts.Args)+1)
	args = append(args, doctest.ProgramName)
	args = append(args, opts.Args...)

	c.harness.Main(ctx, args, collector.Tests)
	return nil
}
