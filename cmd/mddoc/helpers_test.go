package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alnah/go-mddoc"
)

// newTestEnv returns an environment writing to buffers.
func newTestEnv() (env *Environment, stdout, stderr *bytes.Buffer) {
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	env = &Environment{
		Now:      time.Now,
		Stdout:   stdout,
		Stderr:   stderr,
		Debounce: 10 * time.Millisecond,
	}
	return env, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map relative paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}

// recordingHarness captures what the test command hands to the harness.
type recordingHarness struct {
	mu     sync.Mutex
	called bool
	args   []string
	tests  []mddoc.TestCase
}

func (h *recordingHarness) Main(_ context.Context, args []string, tests []mddoc.TestCase) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.called = true
	h.args = args
	h.tests = tests
}
