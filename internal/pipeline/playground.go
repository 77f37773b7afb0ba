package pipeline

import (
	"html"

	"github.com/alnah/go-mddoc/internal/doctest"
	"github.com/alnah/go-mddoc/internal/mdast"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindRunLink is the node kind of a playground Run link.
var KindRunLink = ast.NewNodeKind("RunLink")

// RunLink follows a runnable example and carries its source.
type RunLink struct {
	ast.BaseBlock
	Code []byte
}

// Kind implements ast.Node.
func (n *RunLink) Kind() ast.NodeKind {
	return KindRunLink
}

// Dump implements ast.Node.
func (n *RunLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Code": string(n.Code)}, nil)
}

// runLinkTransformer inserts a RunLink after every playable Go example.
type runLinkTransformer struct{}

func (t *runLinkTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	for _, fb := range mdast.FencedCodeBlocks(doc) {
		if !doctest.ParseFence(mdast.FenceInfo(fb, source)).Playable() {
			continue
		}
		parent := fb.Parent()
		if parent == nil {
			continue
		}
		parent.InsertAfter(parent, fb, &RunLink{Code: mdast.CodeSource(fb, source)})
	}
}

// runLinkRenderer writes a RunLink as an anchor the page script activates
// with window.playgroundUrl.
type runLinkRenderer struct{}

func (r *runLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindRunLink, r.render)
}

func (r *runLinkRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*RunLink)
	_, _ = w.WriteString(`<a class="test-arrow" data-lang="go" data-code="`)
	_, _ = w.WriteString(html.EscapeString(string(n.Code)))
	_, _ = w.WriteString("\">Run</a>\n")
	return ast.WalkContinue, nil
}

// playgroundExtension adds Run links to runnable examples.
type playgroundExtension struct{}

func (e *playgroundExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&runLinkTransformer{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&runLinkRenderer{}, 500),
	))
}
