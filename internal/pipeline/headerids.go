package pipeline

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// defaultHeaderID is used for headings whose text yields an empty slug.
const defaultHeaderID = "section"

// HeaderIDs hands out unique heading anchors for one page.
// It outlives a single parse: IDs stay taken until Reset.
type HeaderIDs struct {
	counts map[string]int
	taken  map[string]bool
}

// Compile-time interface implementation check.
var _ parser.IDs = (*HeaderIDs)(nil)

// NewHeaderIDs creates an empty registry.
func NewHeaderIDs() *HeaderIDs {
	h := &HeaderIDs{}
	h.Reset()
	return h
}

// Reset forgets every ID handed out so far.
func (h *HeaderIDs) Reset() {
	h.counts = make(map[string]int)
	h.taken = make(map[string]bool)
}

// Generate returns a unique ID derived from the heading text.
// Repeats get "-1", "-2", ... suffixes.
func (h *HeaderIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := Slug(string(value))
	if base == "" {
		base = defaultHeaderID
	}
	for {
		n := h.counts[base]
		h.counts[base] = n + 1

		id := base
		if n > 0 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		if !h.taken[id] {
			h.taken[id] = true
			return []byte(id)
		}
	}
}

// Put records an explicitly assigned ID.
func (h *HeaderIDs) Put(value []byte) {
	h.taken[string(value)] = true
}

// Slug lowercases s, folds accents, keeps letters and digits, and joins
// words with single dashes: "Café au Lait!" -> "cafe-au-lait".
func Slug(s string) string {
	s = norm.NFKD.String(cases.Lower(language.Und).String(s))

	var b strings.Builder
	pendingDash := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left by NFKD
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingDash = true
		}
	}
	return b.String()
}
