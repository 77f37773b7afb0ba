//go:build integration

package main

// Notes:
// - These tests build and run real examples with the go command on PATH.
// - The harness exit status is propagated as the process exit code instead
//   of terminating the test binary.

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestIntegration_TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        string
		wantCode   int
		wantStdout []string
	}{
		{
			name:       "passing examples",
			doc:        "% Guide\n\n## Hello\n\n```go\nfmt.Println(\"hi\")\n// Output: hi\n```\n\n```go,ignore\nnot go\n```\n",
			wantCode:   ExitSuccess,
			wantStdout: []string{"running 2 tests", "... ok", "... ignored", "test result: ok. 1 passed; 0 failed; 1 ignored"},
		},
		{
			name:       "failing example",
			doc:        "% Guide\n\n```go\npanic(\"boom\")\n```\n",
			wantCode:   ExitTestsFailed,
			wantStdout: []string{"FAILED", "test result: FAILED. 0 passed; 1 failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := setupTestDir(t, map[string]string{"guide.md": tt.doc})
			env, stdout, stderr := newTestEnv()

			code := runMain(context.Background(), []string{"mddoc", "test", filepath.Join(dir, "guide.md"), "--timeout", "2m"}, env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstdout:\n%s\nstderr:\n%s", code, tt.wantCode, stdout, stderr)
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestIntegration_MissingGoToolchain(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"guide.md": "% Guide\n\n```go\nfmt.Println(1)\n```\n"})
	env, stdout, _ := newTestEnv()

	code := runMain(context.Background(), []string{"mddoc", "test", filepath.Join(dir, "guide.md"), "--go", filepath.Join(dir, "no-such-go")}, env)
	if code != ExitTestsFailed {
		t.Errorf("exit code = %d, want %d", code, ExitTestsFailed)
	}
	if !strings.Contains(stdout.String(), "hint:") {
		t.Errorf("missing toolchain should carry a hint:\n%s", stdout)
	}
}
