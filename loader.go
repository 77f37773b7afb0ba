package mddoc

import (
	"os"
	"strings"
	"unicode/utf8"
)

// LoadText reads the file at path and returns its content as text.
// Fails with OutcomeInputUnreadable on any I/O error and with
// OutcomeInputNotText when the bytes are not valid UTF-8. Decoding is
// all-or-nothing: no replacement characters are ever substituted.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
	if err != nil {
		return "", &Error{Outcome: OutcomeInputUnreadable, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &Error{Outcome: OutcomeInputNotText, Path: path, Err: ErrNotText}
	}
	return string(data), nil
}

// LoadFragments loads each file in paths and concatenates their contents,
// each followed by exactly one newline. An empty list yields "".
// Any single failure fails the whole set with OutcomeFragmentLoadFailed;
// the error still names the offending file and its cause.
func LoadFragments(paths []string) (string, error) {
	var b strings.Builder
	for _, p := range paths {
		s, err := LoadText(p)
		if err != nil {
			e := err.(*Error)
			return "", &Error{Outcome: OutcomeFragmentLoadFailed, Path: e.Path, Err: e.Err}
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Fragments holds the three operator-supplied HTML blocks of a page.
type Fragments struct {
	InHeader      string
	BeforeContent string
	AfterContent  string
}

// loadFragmentSet loads the three fragment lists. They are loaded
// independently but fail together.
func loadFragmentSet(inHeader, beforeContent, afterContent []string) (Fragments, error) {
	var f Fragments
	var err error
	if f.InHeader, err = LoadFragments(inHeader); err != nil {
		return Fragments{}, err
	}
	if f.BeforeContent, err = LoadFragments(beforeContent); err != nil {
		return Fragments{}, err
	}
	if f.AfterContent, err = LoadFragments(afterContent); err != nil {
		return Fragments{}, err
	}
	return f, nil
}
