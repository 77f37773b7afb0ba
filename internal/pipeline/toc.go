package pipeline

import (
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-mddoc/internal/mdast"
	"github.com/yuin/goldmark/ast"
)

// headingInfo represents a heading of the parsed body.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// collectHeadings returns the headings of doc that carry an ID.
func collectHeadings(doc ast.Node, source []byte) []headingInfo {
	var headings []headingInfo
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		id, ok := h.AttributeString("id")
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		var idStr string
		switch v := id.(type) {
		case []byte:
			idStr = string(v)
		case string:
			idStr = v
		}
		headings = append(headings, headingInfo{
			Level: h.Level,
			ID:    idStr,
			Text:  mdast.HeadingText(h, source),
		})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// numberingState tracks hierarchical numbering for TOC entries.
// A deeper heading nests exactly one step below the previous one whatever
// the level gap; a shallower one returns to its depth relative to the first
// heading, never deeper than the previous entry.
type numberingState struct {
	counters     [6]int // counters[0] = depth 1 count, etc.
	minLevelSeen int    // level of the first heading
	lastLevel    int    // 0 = no heading yet
	lastDepth    int
}

// next returns the section number ("1.2") and the depth for a heading level.
func (n *numberingState) next(level int) (num string, depth int) {
	switch {
	case n.lastLevel == 0:
		n.minLevelSeen = level
		depth = 1
	case level > n.lastLevel:
		depth = min(n.lastDepth+1, len(n.counters))
	case level == n.lastLevel:
		depth = n.lastDepth
	default:
		depth = level - n.minLevelSeen + 1
		if depth < 1 {
			depth = 1
		}
		if depth > n.lastDepth {
			depth = n.lastDepth
		}
	}
	n.lastLevel = level
	n.lastDepth = depth

	for i := depth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[depth-1]++

	parts := make([]string, depth)
	for i := 0; i < depth; i++ {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, "."), depth
}

// renderTOC returns a numbered, nested table of contents, or "" when there
// are no headings.
func renderTOC(headings []headingInfo) string {
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<nav id="TOC">`)

	var numbering numberingState
	open := 0
	for _, h := range headings {
		num, depth := numbering.next(h.Level)

		if depth > open {
			for open < depth {
				b.WriteString("<ul>")
				open++
			}
		} else {
			b.WriteString("</li>")
			for open > depth {
				b.WriteString("</ul></li>")
				open--
			}
		}

		b.WriteString(`<li><a href="#`)
		b.WriteString(html.EscapeString(h.ID))
		b.WriteString(`"><span class="header-section-number">`)
		b.WriteString(num)
		b.WriteString(`</span> `)
		b.WriteString(html.EscapeString(h.Text))
		b.WriteString(`</a>`)
	}

	b.WriteString("</li>")
	for open > 1 {
		b.WriteString("</ul></li>")
		open--
	}
	b.WriteString("</ul></nav>\n")
	return b.String()
}
