// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-mddoc/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForMissingTitle returns a hint for documents without a title directive.
func ForMissingTitle() string {
	return format("start the document with a line such as `% My Title`")
}

// ForNotText returns a hint for input that is not valid UTF-8.
func ForNotText() string {
	return format("save the file as UTF-8, e.g. iconv -f LATIN1 -t UTF-8")
}

// ForFragment returns a hint for unreadable fragment files.
func ForFragment() string {
	return format("fragment paths are resolved from the working directory")
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable, or pick another with -o")
}

// ForGoToolchain returns hints for a missing go command.
// Detects CI/Docker environment where images often ship without Go.
func ForGoToolchain() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if inCI || IsInContainer() {
		hints = append(hints, "use an image that ships Go, such as golang:1")
	}
	if os.Getenv("MDDOC_GO") == "" {
		hints = append(hints, "install Go from https://go.dev/dl or set MDDOC_GO / --go")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the per-example timeout.
func ForTimeout() string {
	return format("for slow examples, use the --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/mddoc/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
