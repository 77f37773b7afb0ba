package pipeline

// Notes:
// - Slug: we test the character classes that matter for anchors (letters,
//   digits, separators, accents, punctuation), not every Unicode category.
// - HeaderIDs: Generate ignores the node kind, so all cases use KindHeading.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"testing"

	"github.com/yuin/goldmark/ast"
)

// ---------------------------------------------------------------------------
// TestSlug - Anchor slug generation
// ---------------------------------------------------------------------------

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Install", "install"},
		{"spaces", "Getting Started", "getting-started"},
		{"punctuation dropped", "What's new?", "whats-new"},
		{"accents folded", "Café au Lait", "cafe-au-lait"},
		{"digits kept", "Go 1.22 Notes", "go-122-notes"},
		{"underscores and dashes collapse", "a_-_b", "a-b"},
		{"leading and trailing separators", "  -- Intro --  ", "intro"},
		{"non latin letters kept", "Привет мир", "привет-мир"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHeaderIDs - Unique IDs and reset
// ---------------------------------------------------------------------------

func TestHeaderIDs_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "distinct headings",
			inputs: []string{"Intro", "Usage"},
			want:   []string{"intro", "usage"},
		},
		{
			name:   "repeats get suffixes",
			inputs: []string{"Example", "Example", "Example"},
			want:   []string{"example", "example-1", "example-2"},
		},
		{
			name:   "suffix collides with real heading",
			inputs: []string{"Foo", "Foo 1", "Foo"},
			want:   []string{"foo", "foo-1", "foo-2"},
		},
		{
			name:   "empty slug uses default",
			inputs: []string{"???", "!!!"},
			want:   []string{"section", "section-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ids := NewHeaderIDs()
			for i, in := range tt.inputs {
				got := string(ids.Generate([]byte(in), ast.KindHeading))
				if got != tt.want[i] {
					t.Errorf("Generate(%q) #%d = %q, want %q", in, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestHeaderIDs_Put(t *testing.T) {
	t.Parallel()

	ids := NewHeaderIDs()
	ids.Put([]byte("intro"))

	if got := string(ids.Generate([]byte("Intro"), ast.KindHeading)); got != "intro-1" {
		t.Errorf("Generate after Put = %q, want %q", got, "intro-1")
	}
}

func TestHeaderIDs_Reset(t *testing.T) {
	t.Parallel()

	ids := NewHeaderIDs()
	_ = ids.Generate([]byte("Intro"), ast.KindHeading)
	ids.Reset()

	if got := string(ids.Generate([]byte("Intro"), ast.KindHeading)); got != "intro" {
		t.Errorf("Generate after Reset = %q, want %q", got, "intro")
	}
}
