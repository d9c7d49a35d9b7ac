package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/skilltrend/snapshot"
)

// isolate points the search paths at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ".skilltrend.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, snapshot.DefaultPath, cfg.Snapshot.Path)
	assert.Equal(t, int64(0), cfg.Generator.Seed)
	assert.Equal(t, "", cfg.Catalog.Path)
	assert.Equal(t, "TR", cfg.View.Region)
	assert.Equal(t, "tr", cfg.View.Lang)
	assert.Equal(t, 8, cfg.View.Top)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Output.Colors)

	assert.Equal(t, cfg, Default())
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `
snapshot:
  path: out/skills.json
generator:
  seed: 42
view:
  region: Global
  lang: en
  top: 5
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "out/skills.json", cfg.Snapshot.Path)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, "Global", cfg.View.Region)
	assert.Equal(t, "en", cfg.View.Lang)
	assert.Equal(t, 5, cfg.View.Top)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "logging:\n  level: debug\n  format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SKILLTREND_SNAPSHOT_PATH", "/tmp/env.json")
	t.Setenv("SKILLTREND_VIEW_LANG", "en")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.json", cfg.Snapshot.Path)
	assert.Equal(t, "en", cfg.View.Lang)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"level", "logging:\n  level: loud\n", "invalid logging level"},
		{"format", "logging:\n  format: xml\n", "invalid logging format"},
		{"lang", "view:\n  lang: de\n", "invalid view language"},
		{"top", "view:\n  top: -1\n", "invalid view.top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, tt.body)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "view: [unclosed\n")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
