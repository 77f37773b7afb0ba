package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mddoc"
	"github.com/alnah/go-mddoc/internal/config"
)

// runRender implements `mddoc render`.
func runRender(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
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
	mergeRenderFlags(flags, cfg)

	opts := renderOptions(input, cfg)
	c := mddoc.NewConverter()
	render := func() int {
		return renderDocument(ctx, c, opts, flags.common, env)
	}

	code := render()
	if !flags.watch {
		return code
	}
	return watch(ctx, watchedFiles(opts), env.Debounce, logger, code, render)
}

// mergeRenderFlags merges CLI flags into config. Scalar flags override
// config values; list flags append after the config lists.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Render.OutputDir = flags.output
	}
	if flags.playgroundURL != "" {
		cfg.Render.PlaygroundURL = flags.playgroundURL
	}
	if flags.noTOC {
		cfg.Render.TOC = false
	}
	cfg.Render.CSS = append(cfg.Render.CSS, flags.css...)
	cfg.Render.InHeader = append(cfg.Render.InHeader, flags.inHeader...)
	cfg.Render.BeforeContent = append(cfg.Render.BeforeContent, flags.beforeContent...)
	cfg.Render.AfterContent = append(cfg.Render.AfterContent, flags.afterContent...)
}

// renderOptions builds the library options for input from the effective
// configuration.
func renderOptions(input string, cfg *config.Config) mddoc.RenderOptions {
	return mddoc.RenderOptions{
		Input:         input,
		OutputDir:     cfg.Render.OutputDir,
		Stylesheets:   cfg.Render.CSS,
		InHeader:      cfg.Render.InHeader,
		BeforeContent: cfg.Render.BeforeContent,
		AfterContent:  cfg.Render.AfterContent,
		PlaygroundURL: cfg.Render.PlaygroundURL,
		DisableTOC:    !cfg.Render.TOC,
	}
}

// renderDocument renders once, printing the diagnostic on failure and the
// created path on success. Returns the exit code of the render.
func renderDocument(ctx context.Context, c *mddoc.Converter, opts mddoc.RenderOptions, common commonFlags, env *Environment) int {
	start := env.Now()
	outPath, err := c.Render(ctx, opts)
	if err != nil {
		return report(env.Stderr, err)
	}

	switch {
	case common.quiet:
	case common.verbose:
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", opts.Input, outPath, env.Now().Sub(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return ExitSuccess
}

// watchedFiles lists the files whose changes trigger a re-render.
func watchedFiles(opts mddoc.RenderOptions) []string {
	files := []string{opts.Input}
	files = append(files, opts.InHeader...)
	files = append(files, opts.BeforeContent...)
	files = append(files, opts.AfterContent...)
	return files
}

// logOutcome records a watch-mode render result.
func logOutcome(logger *slog.Logger, code int) {
	if code == ExitSuccess {
		logger.Info("render succeeded")
		return
	}
	logger.Warn("render failed", slog.Int("exit_code", code))
}
