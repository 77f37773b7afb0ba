package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// BodyOptions controls how a body is rendered.
type BodyOptions struct {
	Playground bool // follow runnable Go examples with a Run link
	TOC        bool // prepend a numbered table of contents
}

// Renderer converts a Markdown body to an HTML fragment.
// Heading IDs are unique across every body rendered since the last
// ResetHeaders. A Renderer is not safe for concurrent use.
type Renderer struct {
	ids *HeaderIDs
}

// NewRenderer creates a Renderer with an empty heading-ID registry.
func NewRenderer() *Renderer {
	return &Renderer{ids: NewHeaderIDs()}
}

// ResetHeaders starts a new page: previously issued heading IDs may be reused.
func (r *Renderer) ResetHeaders() {
	r.ids.Reset()
}

// RenderBody converts Markdown text to an HTML fragment.
func (r *Renderer) RenderBody(ctx context.Context, body string, opts BodyOptions) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	md := newMarkdown(opts.Playground)
	source := []byte(body)
	pctx := parser.NewContext(parser.WithIDs(r.ids))
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	var buf bytes.Buffer
	if opts.TOC {
		buf.WriteString(renderTOC(collectHeadings(doc, source)))
	}
	if err := md.Renderer().Render(&buf, source, doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// newMarkdown builds a Goldmark instance with GFM extensions and syntax highlighting.
func newMarkdown(playground bool) goldmark.Markdown {
	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes so page stylesheets control colors
			),
		),
	}
	if playground {
		extensions = append(extensions, &playgroundExtension{})
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // IDs come from the page-scoped registry
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(), // documents are operator-authored; inline HTML passes through
		),
	)
}
