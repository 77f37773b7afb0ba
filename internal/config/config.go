package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/alnah/go-mddoc/internal/fileutil"
	"github.com/alnah/go-mddoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// AppDirName is the directory searched under the user config dir.
const AppDirName = "mddoc"

// Defaults.
const (
	DefaultOutputDir = "doc"
	DefaultTimeout   = "60s"
	DefaultGoBin     = "go"
)

func init() {
	// Report field names as they appear in the YAML file.
	validation.ErrorTag = "yaml"
}

// Config holds the settings of both pipelines.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Test   TestConfig   `yaml:"test"`
}

// RenderConfig configures the render pipeline.
type RenderConfig struct {
	OutputDir     string   `yaml:"outputDir"`
	CSS           []string `yaml:"css"`           // stylesheet URLs, in order
	InHeader      []string `yaml:"inHeader"`      // fragment files for <head>
	BeforeContent []string `yaml:"beforeContent"` // fragment files before the title
	AfterContent  []string `yaml:"afterContent"`  // fragment files after the body
	PlaygroundURL string   `yaml:"playgroundURL"` // empty = no Run links
	TOC           bool     `yaml:"toc"`
}

// TestConfig configures the test pipeline.
type TestConfig struct {
	Libs    []string `yaml:"libs"`    // module directories visible to examples
	Args    []string `yaml:"args"`    // default harness arguments
	Threads int      `yaml:"threads"` // 0 = GOMAXPROCS
	Timeout string   `yaml:"timeout"` // per example, Go duration syntax
	GoBin   string   `yaml:"goBin"`
}

// Validate checks both sections. Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("%w: render: %v", ErrConfigInvalid, err)
	}
	if err := c.Test.Validate(); err != nil {
		return fmt.Errorf("%w: test: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Validate validates the render configuration.
func (c *RenderConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.CSS, validation.Each(validation.Required)),
		validation.Field(&c.InHeader, validation.Each(validation.Required)),
		validation.Field(&c.BeforeContent, validation.Each(validation.Required)),
		validation.Field(&c.AfterContent, validation.Each(validation.Required)),
		validation.Field(&c.PlaygroundURL, is.URL),
	)
}

// Validate validates the test configuration.
func (c *TestConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Libs, validation.Each(validation.Required)),
		validation.Field(&c.Threads, validation.Min(0)),
		validation.Field(&c.Timeout, validation.Required, validation.By(positiveDuration)),
		validation.Field(&c.GoBin, validation.Required),
	)
}

// TimeoutDuration returns the parsed per-example timeout.
// Only meaningful on a validated config.
func (c *TestConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func positiveDuration(value any) error {
	s, _ := value.(string)
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.New("must be a duration such as 30s or 2m")
	}
	if d <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			OutputDir: DefaultOutputDir,
			TOC:       true,
		},
		Test: TestConfig{
			Timeout: DefaultTimeout,
			GoBin:   DefaultGoBin,
		},
	}
}

// NotFoundError reports a config name that matched no file.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Is makes errors.Is(err, ErrConfigNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their defaults.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: nameOrPath, Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/mddoc/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}
