package mddoc

import (
	"context"
	"os"

	"github.com/alnah/go-mddoc/internal/fileutil"
	"github.com/alnah/go-mddoc/internal/pipeline"
)

// Render converts opts.Input into <opts.OutputDir>/<stem>.html.
//
// Stages run strictly in order and the first failure is terminal:
//
//  1. load the input (OutcomeInputUnreadable, OutcomeInputNotText)
//  2. load the three fragment lists (OutcomeFragmentLoadFailed)
//  3. create the output file (OutcomeOutputUnwritable)
//  4. split directives from the body (OutcomeMissingMetadata)
//  5. reset header IDs and render the body
//  6. assemble and write the page (OutcomeWriteFailed)
//
// Returns the output path, which is set even on failure once known.
func (c *Converter) Render(ctx context.Context, opts RenderOptions) (string, error) {
	if opts.Input == "" {
		return "", ErrEmptyInput
	}
	outputPath := fileutil.OutputPath(opts.Input, opts.OutputDir, ".html")

	text, err := LoadText(opts.Input)
	if err != nil {
		return outputPath, err
	}

	fragments, err := loadFragmentSet(opts.InHeader, opts.BeforeContent, opts.AfterContent)
	if err != nil {
		return outputPath, err
	}

	out, err := os.Create(outputPath) // #nosec G304 -- output dir is operator-supplied
	if err != nil {
		return outputPath, &Error{Outcome: OutcomeOutputUnwritable, Path: outputPath, Err: err}
	}
	defer func() { _ = out.Close() }()

	metadata, body := SplitMetadata(text)
	if len(metadata) == 0 {
		return outputPath, &Error{Outcome: OutcomeMissingMetadata, Err: ErrMissingTitle}
	}

	// Playground is decided before the body is rendered: it controls
	// whether runnable examples get a Run affordance.
	c.renderer.ResetHeaders()
	bodyHTML, err := c.renderer.RenderBody(ctx, body, pipeline.BodyOptions{
		Playground: opts.PlaygroundURL != "",
		TOC:        !opts.DisableTOC,
	})
	if err != nil {
		return outputPath, &Error{Outcome: OutcomeWriteFailed, Path: outputPath, Err: err}
	}

	page, err := Assemble(Page{
		Title:         metadata[0],
		Stylesheets:   opts.Stylesheets,
		Fragments:     fragments,
		BodyHTML:      bodyHTML,
		PlaygroundURL: opts.PlaygroundURL,
	})
	if err != nil {
		return outputPath, &Error{Outcome: OutcomeWriteFailed, Path: outputPath, Err: err}
	}

	if _, err := out.Write(page); err != nil {
		return outputPath, &Error{Outcome: OutcomeWriteFailed, Path: outputPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return outputPath, &Error{Outcome: OutcomeWriteFailed, Path: outputPath, Err: err}
	}
	return outputPath, nil
}
