// Package config loads grader settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "paperjudge.yaml"

// Config holds all grader configuration.
type Config struct {
	Repos   ReposConfig   `yaml:"repos"`
	Files   FilesConfig   `yaml:"files"`
	Build   BuildConfig   `yaml:"build"`
	Grading GradingConfig `yaml:"grading"`
	Runtime RuntimeConfig `yaml:"runtime"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReposConfig locates the reference test repository and the checkout dirs.
// Directories are relative to the working directory.
type ReposConfig struct {
	TestAddr   string `yaml:"test_addr"`
	TestDir    string `yaml:"test_dir"`
	StudentDir string `yaml:"student_dir"`
	Branch     string `yaml:"branch"`
}

// FilesConfig names the transcripts and the report.
type FilesConfig struct {
	Answers          string `yaml:"answers"`           // inside the student dir
	ReferenceAnswers string `yaml:"reference_answers"` // inside the test build dir
	Report           string `yaml:"report"`
}

// BuildConfig configures the cmake build of the reference program.
type BuildConfig struct {
	Dir       string `yaml:"dir"` // relative to the test dir
	Generator string `yaml:"generator"`
	Tool      string `yaml:"tool"`
}

// GradingConfig configures the aligner and the report.
type GradingConfig struct {
	PackageName       string `yaml:"package_name"`
	Tag               string `yaml:"tag"`
	WildcardMarker    string `yaml:"wildcard_marker"`
	WildcardThreshold int64  `yaml:"wildcard_threshold"`
	IgnoreWhitespace  bool   `yaml:"ignore_whitespace"`
}

// RuntimeConfig bounds external processes.
type RuntimeConfig struct {
	RunTimeout string `yaml:"run_timeout"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	return &Config{
		Repos: ReposConfig{
			TestAddr:   "https://github.com/kystyn/paper_test_source.git",
			TestDir:    "test",
			StudentDir: "student",
			Branch:     "master",
		},
		Files: FilesConfig{
			Answers:          "answers.txt",
			ReferenceAnswers: "refAnswers.txt",
			Report:           "results.json",
		},
		Build: BuildConfig{
			Dir:       "build",
			Generator: "Ninja",
			Tool:      "ninja",
		},
		Grading: GradingConfig{
			PackageName:       "test",
			Tag:               "Normal",
			WildcardMarker:    "xxx",
			WildcardThreshold: 1000,
			IgnoreWhitespace:  true,
		},
		Runtime: RuntimeConfig{
			RunTimeout: "2m",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks fields the workflow cannot do without.
func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		key, value string
	}{
		{"repos.test_addr", c.Repos.TestAddr},
		{"repos.test_dir", c.Repos.TestDir},
		{"repos.student_dir", c.Repos.StudentDir},
		{"files.answers", c.Files.Answers},
		{"files.reference_answers", c.Files.ReferenceAnswers},
		{"build.dir", c.Build.Dir},
		{"build.tool", c.Build.Tool},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", field.key))
		}
	}

	if c.Grading.WildcardThreshold < 0 {
		errs = append(errs, errors.New("grading.wildcard_threshold must not be negative"))
	}

	if _, err := c.RunTimeout(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// RunTimeout parses the reference run timeout. Zero disables the bound.
func (c *Config) RunTimeout() (time.Duration, error) {
	if c.Runtime.RunTimeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Runtime.RunTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid runtime.run_timeout %q: %w", c.Runtime.RunTimeout, err)
	}

	return d, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PAPERJUDGE_TEST_ADDR"); v != "" {
		c.Repos.TestAddr = v
	}

	if v := os.Getenv("PAPERJUDGE_BRANCH"); v != "" {
		c.Repos.Branch = v
	}

	if v := os.Getenv("PAPERJUDGE_REPORT"); v != "" {
		c.Files.Report = v
	}

	if v := os.Getenv("PAPERJUDGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv("PAPERJUDGE_IGNORE_WHITESPACE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PAPERJUDGE_IGNORE_WHITESPACE %q: %w", v, err)
		}

		c.Grading.IgnoreWhitespace = b
	}

	return nil
}
