package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mddoc"
	"github.com/alnah/go-mddoc/internal/config"
	"github.com/alnah/go-mddoc/internal/fileutil"
)

// runTest implements `mddoc test`.
func runTest(ctx context.Context, args []string, env *Environment) int {
	flags, positional, passthrough, err := parseTestFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		return report(env.Stderr, err)
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	setMaxProcs(logger)

	input, err := singleInput(positional)
	if err != nil {
		return report(env.Stderr, err)
	}

	cfg, err := loadConfig(flags.common.config, logger)
	if err != nil {
		return report(env.Stderr, err)
	}
	mergeTestFlags(flags, cfg)
	if err := cfg.Test.Validate(); err != nil {
		return report(env.Stderr, fmt.Errorf("%w: test: %v", config.ErrConfigInvalid, err))
	}

	for _, lib := range cfg.Test.Libs {
		if !fileutil.DirExists(lib) {
			logger.Warn("library path is not a directory", slog.String("path", lib))
		}
	}

	logger.Info("testing examples",
		slog.String("input", input),
		slog.Int("threads", cfg.Test.Threads),
		slog.String("timeout", cfg.Test.Timeout),
		slog.String("go", cfg.Test.GoBin))

	// The harness reports failures through its exit function; keep the code
	// instead of exiting so deferred cleanup still runs.
	code := ExitSuccess
	opts := []mddoc.Option{
		mddoc.WithTestOutput(env.Stdout),
		mddoc.WithGoBinary(cfg.Test.GoBin),
		mddoc.WithTestThreads(cfg.Test.Threads),
		mddoc.WithExampleTimeout(cfg.Test.TimeoutDuration()),
		mddoc.WithExitFunc(func(c int) { code = c }),
	}
	if env.Harness != nil {
		opts = append(opts, mddoc.WithHarness(env.Harness))
	}

	err = mddoc.NewConverter(opts...).Test(ctx, mddoc.TestOptions{
		Input: input,
		Libs:  cfg.Test.Libs,
		Args:  harnessArgs(cfg.Test.Args, flags.testArgs, passthrough),
	})
	if err != nil {
		return report(env.Stderr, err)
	}
	return code
}

// mergeTestFlags merges CLI flags into config. Scalar flags override
// config values; library paths append after the config list.
func mergeTestFlags(flags *testFlags, cfg *config.Config) {
	if flags.threadsSet {
		cfg.Test.Threads = flags.threads
	}
	if flags.timeout != "" {
		cfg.Test.Timeout = flags.timeout
	}
	if flags.goBin != "" {
		cfg.Test.GoBin = flags.goBin
	}
	cfg.Test.Libs = append(cfg.Test.Libs, flags.libs...)
}

// harnessArgs orders harness arguments: config args, then the fields of
// --test-args, then everything after "--".
func harnessArgs(configured []string, testArgs string, passthrough []string) []string {
	args := make([]string, 0, len(configured)+len(passthrough))
	args = append(args, configured...)
	args = append(args, strings.Fields(testArgs)...)
	args = append(args, passthrough...)
	return args
}
