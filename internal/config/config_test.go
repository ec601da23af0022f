package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "paperjudge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
repos:
  branch: main
grading:
  wildcard_threshold: 500
  ignore_whitespace: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.Repos.Branch)
	assert.Equal(t, int64(500), cfg.Grading.WildcardThreshold)
	assert.False(t, cfg.Grading.IgnoreWhitespace)
	assert.Equal(t, "xxx", cfg.Grading.WildcardMarker)
	assert.Equal(t, "answers.txt", cfg.Files.Answers)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "repos: [unterminated"))
	require.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PAPERJUDGE_TEST_ADDR", "https://example.com/tests.git")
	t.Setenv("PAPERJUDGE_BRANCH", "release")
	t.Setenv("PAPERJUDGE_REPORT", "out/report.json")
	t.Setenv("PAPERJUDGE_LOG_LEVEL", "debug")
	t.Setenv("PAPERJUDGE_IGNORE_WHITESPACE", "false")

	cfg, err := Load(writeConfig(t, "repos:\n  branch: main\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/tests.git", cfg.Repos.TestAddr)
	assert.Equal(t, "release", cfg.Repos.Branch)
	assert.Equal(t, "out/report.json", cfg.Files.Report)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Grading.IgnoreWhitespace)
}

func TestLoad_InvalidEnvBool(t *testing.T) {
	t.Setenv("PAPERJUDGE_IGNORE_WHITESPACE", "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "PAPERJUDGE_IGNORE_WHITESPACE")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name: "empty fields",
			mutate: func(c *Config) {
				c.Repos.TestAddr = ""
				c.Build.Tool = "  "
			},
			wantErr: []string{"repos.test_addr must not be empty", "build.tool must not be empty"},
		},
		{
			name:    "negative threshold",
			mutate:  func(c *Config) { c.Grading.WildcardThreshold = -1 },
			wantErr: []string{"wildcard_threshold"},
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Runtime.RunTimeout = "soon" },
			wantErr: []string{"invalid runtime.run_timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}

			for _, want := range tt.wantErr {
				require.ErrorContains(t, err, want)
			}
		})
	}
}

func TestRunTimeout(t *testing.T) {
	cfg := DefaultConfig()

	d, err := cfg.RunTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)

	cfg.Runtime.RunTimeout = ""
	d, err = cfg.RunTimeout()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "paperjudge.yaml")

	cfg := DefaultConfig()
	cfg.Build.Generator = "Unix Makefiles"
	cfg.Build.Tool = "make"
	cfg.Grading.Tag = "Bonus"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
