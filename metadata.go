package mddoc

import (
	"strings"
	"unicode"
)

// MetadataMarker starts a directive line.
const MetadataMarker = '%'

// SplitMetadata separates the leading directive lines of text from its body.
//
// Each leading line whose first byte is '%' becomes a directive with the
// marker and the whitespace that follows it removed. The body is the suffix
// of text starting at the first line that is not a directive, sliced at its
// original byte offset so whitespace and line endings survive untouched.
// When every line is a directive the body is empty.
func SplitMetadata(text string) (metadata []string, body string) {
	offset := 0
	for offset < len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		next := len(text)
		if end >= 0 {
			next = offset + end + 1
			end += offset
		} else {
			end = len(text)
		}

		line := strings.TrimSuffix(text[offset:end], "\r")
		if len(line) == 0 || line[0] != MetadataMarker {
			return metadata, text[offset:]
		}
		metadata = append(metadata, strings.TrimLeftFunc(line[1:], unicode.IsSpace))
		offset = next
	}
	return metadata, ""
}
