//go:build bench

package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// BenchmarkRenderBody benchmarks body rendering with a table of contents.
func BenchmarkRenderBody(b *testing.B) {
	ctx := context.Background()

	inputs := []struct {
		name    string
		content string
	}{
		{"minimal", "Hello"},
		{"headings", generateSections(20, false)},
		{"examples", generateSections(20, true)},
		{"large", generateSections(200, true)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			r := NewRenderer()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				r.ResetHeaders()
				if _, err := r.RenderBody(ctx, input.content, BodyOptions{TOC: true}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRenderBodyPlayground measures the cost of Run link insertion.
func BenchmarkRenderBodyPlayground(b *testing.B) {
	ctx := context.Background()
	content := generateSections(50, true)

	for _, playground := range []bool{false, true} {
		b.Run(fmt.Sprintf("playground_%t", playground), func(b *testing.B) {
			r := NewRenderer()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				r.ResetHeaders()
				if _, err := r.RenderBody(ctx, content, BodyOptions{Playground: playground}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// generateSections creates n sections, each optionally with a Go example.
func generateSections(n int, withExamples bool) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "## Section %d\n\nSome text for section %d.\n\n", i, i)
		if withExamples {
			fmt.Fprintf(&sb, "```go\nfmt.Println(%d)\n```\n\n", i)
		}
	}
	return sb.String()
}
