package pipeline

// Notes:
// - renderTOC is tested on hand-built heading lists; collectHeadings is
//   covered through RenderBody in md2html_test.go.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNumberingState - Hierarchical section numbers
// ---------------------------------------------------------------------------

func TestNumberingState_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		levels    []int
		wantNums  []string
		wantDepth []int
	}{
		{
			name:      "flat",
			levels:    []int{2, 2, 2},
			wantNums:  []string{"1", "2", "3"},
			wantDepth: []int{1, 1, 1},
		},
		{
			name:      "nested",
			levels:    []int{1, 2, 2, 1, 2},
			wantNums:  []string{"1", "1.1", "1.2", "2", "2.1"},
			wantDepth: []int{1, 2, 2, 1, 2},
		},
		{
			name:      "gap clamped to one level",
			levels:    []int{1, 3, 3},
			wantNums:  []string{"1", "1.1", "1.2"},
			wantDepth: []int{1, 2, 2},
		},
		{
			name:      "heading above first level",
			levels:    []int{2, 1, 2},
			wantNums:  []string{"1", "2", "2.1"},
			wantDepth: []int{1, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var n numberingState
			for i, level := range tt.levels {
				num, depth := n.next(level)
				if num != tt.wantNums[i] || depth != tt.wantDepth[i] {
					t.Errorf("next(%d) #%d = (%q, %d), want (%q, %d)",
						level, i, num, depth, tt.wantNums[i], tt.wantDepth[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderTOC - Table of contents markup
// ---------------------------------------------------------------------------

func TestRenderTOC(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		if got := renderTOC(nil); got != "" {
			t.Errorf("renderTOC(nil) = %q, want empty", got)
		}
	})

	t.Run("single heading", func(t *testing.T) {
		t.Parallel()

		got := renderTOC([]headingInfo{{Level: 2, ID: "intro", Text: "Intro"}})
		want := `<nav id="TOC"><ul><li><a href="#intro"><span class="header-section-number">1</span> Intro</a></li></ul></nav>` + "\n"
		if got != want {
			t.Errorf("renderTOC() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("nested and back out", func(t *testing.T) {
		t.Parallel()

		got := renderTOC([]headingInfo{
			{Level: 1, ID: "a", Text: "A"},
			{Level: 2, ID: "b", Text: "B"},
			{Level: 1, ID: "c", Text: "C"},
		})
		want := `<nav id="TOC"><ul>` +
			`<li><a href="#a"><span class="header-section-number">1</span> A</a>` +
			`<ul><li><a href="#b"><span class="header-section-number">1.1</span> B</a></li></ul></li>` +
			`<li><a href="#c"><span class="header-section-number">2</span> C</a></li>` +
			`</ul></nav>` + "\n"
		if got != want {
			t.Errorf("renderTOC() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("ends nested", func(t *testing.T) {
		t.Parallel()

		got := renderTOC([]headingInfo{
			{Level: 1, ID: "a", Text: "A"},
			{Level: 2, ID: "b", Text: "B"},
			{Level: 3, ID: "c", Text: "C"},
		})
		if strings.Count(got, "<ul>") != strings.Count(got, "</ul>") {
			t.Errorf("unbalanced <ul> in %s", got)
		}
		if strings.Count(got, "<li>") != strings.Count(got, "</li>") {
			t.Errorf("unbalanced <li> in %s", got)
		}
	})

	t.Run("escapes text and id", func(t *testing.T) {
		t.Parallel()

		got := renderTOC([]headingInfo{{Level: 1, ID: `a"b`, Text: "<T & U>"}})
		if !strings.Contains(got, `href="#a&#34;b"`) {
			t.Errorf("id not escaped: %s", got)
		}
		if !strings.Contains(got, "&lt;T &amp; U&gt;") {
			t.Errorf("text not escaped: %s", got)
		}
	})
}
