// Package mdast holds small helpers over the Goldmark AST shared by the
// body renderer and the example extractor.
package mdast

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Parse parses source with the GFM dialect and returns the document node.
// Used where only the tree is needed, not HTML.
func Parse(source []byte) ast.Node {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))
}

// HeadingText returns the plain text of a heading, inline markup removed.
func HeadingText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// FenceInfo returns the raw info string of a fenced code block ("" if none).
func FenceInfo(n *ast.FencedCodeBlock, source []byte) string {
	if n.Info == nil {
		return ""
	}
	return strings.TrimSpace(string(n.Info.Segment.Value(source)))
}

// CodeSource returns the content lines of a code block.
func CodeSource(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// FencedCodeBlocks returns every fenced code block under root in document order.
func FencedCodeBlocks(root ast.Node) []*ast.FencedCodeBlock {
	var blocks []*ast.FencedCodeBlock
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if fb, ok := n.(*ast.FencedCodeBlock); ok {
				blocks = append(blocks, fb)
			}
		}
		return ast.WalkContinue, nil
	})
	return blocks
}

// LineAt returns the 1-based line number of byte offset in source.
func LineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}
