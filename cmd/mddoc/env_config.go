package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mddoc/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // MDDOC_CONFIG: config file name or path
	OutputDir     string // MDDOC_OUTPUT_DIR: render output directory
	PlaygroundURL string // MDDOC_PLAYGROUND_URL: playground base URL
	TestThreads   int    // MDDOC_TEST_THREADS: parallel examples, -1 = unset
	GoBin         string // MDDOC_GO: go command used by the test harness
}

// knownEnvVars lists valid MDDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDDOC_CONFIG":         true,
	"MDDOC_OUTPUT_DIR":     true,
	"MDDOC_PLAYGROUND_URL": true,
	"MDDOC_TEST_THREADS":   true,
	"MDDOC_GO":             true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid numeric values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:    os.Getenv("MDDOC_CONFIG"),
		OutputDir:     os.Getenv("MDDOC_OUTPUT_DIR"),
		PlaygroundURL: os.Getenv("MDDOC_PLAYGROUND_URL"),
		GoBin:         os.Getenv("MDDOC_GO"),
		TestThreads:   -1,
	}

	if threads := os.Getenv("MDDOC_TEST_THREADS"); threads != "" {
		if n, err := strconv.Atoi(threads); err == nil && n >= 0 {
			cfg.TestThreads = n
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for unrecognized MDDOC_* variables.
// Helps catch typos like MDDOC_OUTPUTDIR.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MDDOC_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", slog.String("name", name))
		}
	}
}

// applyEnvConfig applies environment values over the loaded config.
// Precedence: defaults < config file < env vars < CLI flags
// (CLI flags are applied afterwards by the commands).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Render.OutputDir = env.OutputDir
	}
	if env.PlaygroundURL != "" {
		cfg.Render.PlaygroundURL = env.PlaygroundURL
	}
	if env.TestThreads >= 0 {
		cfg.Test.Threads = env.TestThreads
	}
	if env.GoBin != "" {
		cfg.Test.GoBin = env.GoBin
	}
}

// loadConfig resolves the effective configuration: the config named by
// the flag (or MDDOC_CONFIG) over the defaults, then the environment.
func loadConfig(name string, logger *slog.Logger) (*config.Config, error) {
	env := loadEnvConfig()
	warnUnknownEnvVars(logger)

	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Info("loaded config", slog.String("name", name))
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}
