// Package pipeline renders document bodies from Markdown to HTML fragments.
//
// Rendering uses Goldmark with GFM extensions and chroma syntax highlighting,
// and adds:
//   - heading anchors drawn from a page-scoped registry (HeaderIDs) that the
//     caller resets between pages
//   - a numbered table of contents built from the parsed headings
//   - optional playground Run links after runnable Go examples
//
// Page assembly (title, stylesheets, fragments) is handled by the root mddoc
// package; this package only produces the body.
package pipeline
