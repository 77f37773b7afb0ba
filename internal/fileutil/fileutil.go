// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrFileNameInvalid = errors.New("file name must be a plain base name")
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// OutputPath derives <outputDir>/<stem><ext> from inputPath, where stem is
// the base name without its last extension ("guide.md" -> "guide").
// A base name that is only an extension (".md") is kept whole.
func OutputPath(inputPath, outputDir, ext string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(outputDir, stem+ext)
}

// WriteTempDir creates a temporary directory holding files (name -> content).
// Returns the directory and a cleanup function that removes it.
func WriteTempDir(pattern string, files map[string]string) (dir string, cleanup func(), err error) {
	for name := range files {
		if err := ValidateFileName(name); err != nil {
			return "", nil, fmt.Errorf("%w: %q", err, name)
		}
	}

	dir, err = os.MkdirTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}
	cleanup = func() { _ = os.RemoveAll(dir) }

	// Sorted for deterministic failure reporting.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(files[name]), filePermissions); err != nil {
			cleanup()
			return "", nil, fmt.Errorf("writing %s: %w", name, err)
		}
	}

	return dir, cleanup, nil
}

// ValidateFileName checks that name is a single path element.
func ValidateFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return ErrFileNameInvalid
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "mddoc" -> false (name)
//   - "./mddoc.yaml" -> true (relative path)
//   - "/etc/mddoc.yaml" -> true (absolute)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
