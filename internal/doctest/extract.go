package doctest

import (
	"strings"

	"github.com/alnah/go-mddoc/internal/mdast"
	"github.com/yuin/goldmark/ast"
)

// Language is the fence language of runnable examples.
const Language = "go"

// Fence attributes.
const (
	AttrIgnore      = "ignore"
	AttrNoRun       = "no_run"
	AttrShouldPanic = "should_panic"
	AttrCompileFail = "compile_fail"
)

// Fence is a parsed code fence info string ("go,no_run").
type Fence struct {
	Lang        string
	Ignore      bool
	NoRun       bool
	ShouldPanic bool
	CompileFail bool
}

// ParseFence parses an info string. The first token, split on commas and
// whitespace, is the language; unknown attributes are ignored.
func ParseFence(info string) Fence {
	tokens := strings.FieldsFunc(info, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(tokens) == 0 {
		return Fence{}
	}

	f := Fence{Lang: strings.ToLower(tokens[0])}
	for _, tok := range tokens[1:] {
		switch tok {
		case AttrIgnore:
			f.Ignore = true
		case AttrNoRun:
			f.NoRun = true
		case AttrShouldPanic:
			f.ShouldPanic = true
		case AttrCompileFail:
			f.CompileFail = true
		}
	}
	return f
}

// Runnable reports whether the block is collected as an example.
func (f Fence) Runnable() bool {
	return f.Lang == Language
}

// Playable reports whether the block deserves a playground Run link.
func (f Fence) Playable() bool {
	return f.Runnable() && !f.Ignore && !f.CompileFail
}

// Extract returns the Go examples of a document in document order.
// Fenced blocks tagged "go" are examples; everything else, directive lines
// included, is ignored. File, Name and Libs are left for a Collector to set.
func Extract(text string) []TestCase {
	source := []byte(text)
	doc := mdast.Parse(source)

	var tests []TestCase
	section := ""
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			section = mdast.HeadingText(node, source)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			fence := ParseFence(mdast.FenceInfo(node, source))
			if !fence.Runnable() {
				return ast.WalkSkipChildren, nil
			}
			code := string(mdast.CodeSource(node, source))
			want, hasOutput := expectedOutput(code)
			tests = append(tests, TestCase{
				Line:        fenceLine(node, source),
				Section:     section,
				Code:        code,
				Ignore:      fence.Ignore,
				NoRun:       fence.NoRun,
				ShouldPanic: fence.ShouldPanic,
				CompileFail: fence.CompileFail,
				WantOutput:  want,
				HasOutput:   hasOutput,
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return tests
}

// fenceLine returns the 1-based line of the opening fence.
func fenceLine(n *ast.FencedCodeBlock, source []byte) int {
	if n.Info != nil {
		return mdast.LineAt(source, n.Info.Segment.Start)
	}
	if lines := n.Lines(); lines.Len() > 0 {
		return mdast.LineAt(source, lines.At(0).Start) - 1
	}
	return 1
}

// expectedOutput returns the text of a trailing "// Output:" comment block,
// possibly followed by the closing braces of func main. Each expected line is
// trimmed, as go test does for examples.
func expectedOutput(code string) (string, bool) {
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")

	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "}" {
		end--
	}

	start := -1
	for i := end - 1; i >= 0; i-- {
		text, ok := commentText(lines[i])
		if !ok {
			break
		}
		if strings.HasPrefix(text, "Output:") {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var out []string
	first, _ := commentText(lines[start])
	if rest := strings.TrimSpace(strings.TrimPrefix(first, "Output:")); rest != "" {
		out = append(out, rest)
	}
	for _, line := range lines[start+1 : end] {
		text, _ := commentText(line)
		out = append(out, text)
	}
	return strings.TrimSpace(strings.Join(out, "\n")), true
}

// commentText returns the trimmed text of a "//" line comment.
func commentText(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "//") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "//")), true
}
