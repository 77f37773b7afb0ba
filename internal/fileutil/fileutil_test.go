package fileutil_test

// Notes:
// - WriteTempDir: the write error branch after MkdirTemp is not tested because
//   triggering disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-mddoc/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestOutputPath - Output file naming
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		want      string
	}{
		{"simple", "guide.md", "doc", filepath.Join("doc", "guide.html")},
		{"nested input", filepath.Join("src", "book", "intro.md"), "out", filepath.Join("out", "intro.html")},
		{"no extension", "README", "doc", filepath.Join("doc", "README.html")},
		{"only last extension stripped", "notes.v2.md", "doc", filepath.Join("doc", "notes.v2.html")},
		{"dot file", ".md", "doc", filepath.Join("doc", ".md.html")},
		{"empty output dir", "guide.md", "", "guide.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.OutputPath(tt.input, tt.outputDir, ".html")
			if got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.input, tt.outputDir, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempDir - Temporary directory scaffolding
// ---------------------------------------------------------------------------

func TestWriteTempDir(t *testing.T) {
	t.Parallel()

	t.Run("writes every file", func(t *testing.T) {
		t.Parallel()

		files := map[string]string{
			"go.mod":  "module example\n",
			"main.go": "package main\n",
		}
		dir, cleanup, err := fileutil.WriteTempDir("mddoc-test-*", files)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()

		for name, want := range files {
			got, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}
			if string(got) != want {
				t.Errorf("%s = %q, want %q", name, got, want)
			}
		}
	})

	t.Run("cleanup removes directory", func(t *testing.T) {
		t.Parallel()

		dir, cleanup, err := fileutil.WriteTempDir("mddoc-test-*", map[string]string{"a.txt": "a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cleanup()

		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("directory %s still exists after cleanup", dir)
		}
	})

	t.Run("rejects path in file name", func(t *testing.T) {
		t.Parallel()

		_, _, err := fileutil.WriteTempDir("mddoc-test-*", map[string]string{"../escape.go": ""})
		if !errors.Is(err, fileutil.ErrFileNameInvalid) {
			t.Errorf("error = %v, want ErrFileNameInvalid", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateFileName - File name validation
// ---------------------------------------------------------------------------

func TestValidateFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "main.go", false},
		{"dot file", ".env", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"forward slash", "a/b.go", true},
		{"backslash", `a\b.go`, true},
		{"null byte", "a\x00.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateFileName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Existence predicates
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"mddoc", false},
		{"my-config", false},
		{"./mddoc.yaml", true},
		{"/etc/mddoc.yaml", true},
		{`C:\cfg\mddoc.yaml`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
