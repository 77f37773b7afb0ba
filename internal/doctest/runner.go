package doctest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-mddoc/internal/fileutil"
	"github.com/alnah/go-mddoc/internal/process"
)

// ErrGoNotFound indicates the go command could not be executed.
var ErrGoNotFound = errors.New("go toolchain not found")

// Execution is what happened when an example was built and run.
type Execution struct {
	BuildFailed bool
	Ran         bool
	ExitCode    int
	TimedOut    bool
	Stdout      string
	Stderr      string
	Duration    time.Duration
}

// Runner builds and runs one example. An error means the example could not
// be attempted at all (no toolchain, no temp dir); failures of the example
// itself are reported through the Execution.
type Runner interface {
	Run(ctx context.Context, tc TestCase) (Execution, error)
}

// Compile-time interface implementation check.
var _ Runner = (*GoRunner)(nil)

// exampleModule is the module path of the generated example module.
const exampleModule = "mddoctest/example"

// GoRunner runs examples with the go toolchain, each in its own temporary
// module.
type GoRunner struct {
	GoBin   string        // go command, default "go"
	Timeout time.Duration // per-example bound, 0 = none

	versionOnce sync.Once
	version     string
	versionErr  error
}

// Run writes the example module, builds it, and unless the example is
// no_run or compile_fail, runs the binary from the document's directory.
func (r *GoRunner) Run(ctx context.Context, tc TestCase) (res Execution, err error) {
	version, err := r.goVersion(ctx)
	if err != nil {
		return res, err
	}

	files, err := moduleFiles(tc, version)
	if err != nil {
		return res, err
	}
	dir, cleanup, err := fileutil.WriteTempDir("mddoctest-*", files)
	if err != nil {
		return res, fmt.Errorf("preparing example module: %w", err)
	}
	defer cleanup()

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	bin := filepath.Join(dir, "example")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	env := []string{"GOWORK=off"}
	if len(tc.Libs) > 0 {
		env = []string{"GOWORK=" + filepath.Join(dir, "go.work")}
	}
	build := r.command(ctx, dir, env, r.goBin(), "build", "-o", bin, ".")
	stderr, _, code, err := runCommand(build)
	if err != nil {
		return res, err
	}
	if ctx.Err() != nil {
		res.TimedOut = true
		res.Stderr = stderr
		return res, nil
	}
	if code != 0 {
		res.BuildFailed = true
		res.ExitCode = code
		res.Stderr = stderr
		return res, nil
	}
	if tc.NoRun || tc.CompileFail {
		return res, nil
	}

	run := r.command(ctx, workDir(tc.File), nil, bin)
	res.Ran = true
	res.Stderr, res.Stdout, res.ExitCode, err = runCommand(run)
	if err != nil {
		return res, err
	}
	res.TimedOut = ctx.Err() != nil
	return res, nil
}

func (r *GoRunner) goBin() string {
	if r.GoBin == "" {
		return "go"
	}
	return r.GoBin
}

func (r *GoRunner) command(ctx context.Context, dir string, env []string, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if env != nil {
		cmd.Env = append(cmd.Environ(), env...)
	}
	process.Configure(cmd)
	return cmd
}

// goVersion asks the toolchain for its version once. Generated go.mod and
// go.work files declare it so that library modules requiring a recent
// language version still resolve.
func (r *GoRunner) goVersion(ctx context.Context) (string, error) {
	r.versionOnce.Do(func() {
		// Detached from ctx so that one canceled caller does not poison the cache.
		cmd := exec.CommandContext(context.WithoutCancel(ctx), r.goBin(), "env", "GOVERSION")
		out, err := cmd.Output()
		if err != nil {
			r.versionErr = fmt.Errorf("%w: %s: %v", ErrGoNotFound, r.goBin(), err)
			return
		}
		r.version = parseGoVersion(string(out))
	})
	return r.version, r.versionErr
}

// parseGoVersion turns "go1.25.4" (possibly with a suffix such as
// " X:nocoverageredesign" or "-devel") into "1.25.4".
func parseGoVersion(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " -"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimPrefix(s, "go")
	if s == "" {
		return "1.22"
	}
	return s
}

// moduleFiles returns the files of the temporary example module.
func moduleFiles(tc TestCase, version string) (map[string]string, error) {
	files := map[string]string{
		"go.mod":  fmt.Sprintf("module %s\n\ngo %s\n", exampleModule, version),
		"main.go": BuildSource(tc.Code),
	}
	if len(tc.Libs) == 0 {
		return files, nil
	}

	var work strings.Builder
	fmt.Fprintf(&work, "go %s\n\nuse (\n\t.\n", version)
	for _, lib := range tc.Libs {
		abs, err := filepath.Abs(lib)
		if err != nil {
			return nil, fmt.Errorf("resolving library path %q: %w", lib, err)
		}
		fmt.Fprintf(&work, "\t%q\n", filepath.ToSlash(abs))
	}
	work.WriteString(")\n")
	files["go.work"] = work.String()
	return files, nil
}

// workDir is the directory examples run in: the document's own directory,
// so relative paths in examples resolve as the reader expects.
func workDir(file string) string {
	if file == "" {
		return "."
	}
	return filepath.Dir(file)
}

// runCommand runs cmd and returns its stderr, stdout and exit code. A
// non-nil error means the command could not be started.
func runCommand(cmd *exec.Cmd) (stderr, stdout string, code int, err error) {
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return errBuf.String(), outBuf.String(), 0, nil
	case errors.As(err, &exitErr):
		return errBuf.String(), outBuf.String(), exitErr.ExitCode(), nil
	case errors.Is(err, exec.ErrNotFound):
		return "", "", 0, fmt.Errorf("%w: %v", ErrGoNotFound, err)
	case errors.Is(err, exec.ErrWaitDelay):
		return errBuf.String(), outBuf.String(), cmd.ProcessState.ExitCode(), nil
	default:
		return errBuf.String(), outBuf.String(), -1, fmt.Errorf("running %s: %w", filepath.Base(cmd.Path), err)
	}
}
