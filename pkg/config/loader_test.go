package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/lazysetup/pkg/config"
	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Basic(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
starter = "https://x/a/s.git"
plugins = ["https://x/a/p1.git", "https://x/a/p2"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://x/a/s.git", cfg.Starter)
	assert.Equal(t, []string{"https://x/a/p1.git", "https://x/a/p2"}, cfg.Plugins)
	assert.Equal(t, path, cfg.Source)

	// embedded defaults
	assert.Equal(t, 5, cfg.Install.MaxAttempts)
	assert.Equal(t, 8, cfg.Install.Concurrency)
	assert.Equal(t, time.Second, cfg.Install.InitialBackoff)
	assert.Equal(t, 30*time.Second, cfg.Install.MaxBackoff)
	assert.Equal(t, 1, cfg.Install.Depth)
	assert.Equal(t, "git", cfg.Git.Binary)
}

func TestLoad_EmptyPluginsAllowed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
starter = "https://x/a/s.git"
plugins = []
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Plugins)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
starter = "https://x/a/s.git"
plugins = []

[install]
max_attempts = 0
initial_backoff = "250ms"
concurrency = 2

[git]
binary = "/opt/git/bin/git"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Install.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Install.InitialBackoff)
	assert.Equal(t, 30*time.Second, cfg.Install.MaxBackoff)
	assert.Equal(t, 2, cfg.Install.Concurrency)
	assert.Equal(t, "/opt/git/bin/git", cfg.Git.Binary)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
starter = "https://x/a/s.git"
plugins = []
`)
	t.Setenv("LAZYSETUP_INSTALL_MAX_ATTEMPTS", "9")
	t.Setenv("LAZYSETUP_INSTALL_MAX_BACKOFF", "2m")
	t.Setenv("LAZYSETUP_GIT_BINARY", "git2")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Install.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Install.MaxBackoff)
	assert.Equal(t, "git2", cfg.Git.Binary)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.ErrorCode
	}{
		{"malformed toml", "starter = \n plugins = [", errors.ErrConfigParse},
		{"missing starter", `plugins = ["https://x/a/p1"]`, errors.ErrConfigValid},
		{"blank starter", `starter = "  "`, errors.ErrConfigValid},
		{"blank plugin", "starter = \"https://x/a/s\"\nplugins = [\"\"]", errors.ErrConfigValid},
		{"negative attempts", "starter = \"https://x/a/s\"\n[install]\nmax_attempts = -1", errors.ErrConfigValid},
		{"zero depth", "starter = \"https://x/a/s\"\n[install]\ndepth = 0", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err), err.Error())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), config.FileName))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLocate(t *testing.T) {
	explicit, err := config.Locate("/etc/custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/custom.toml", explicit)

	parent := t.TempDir()
	child := filepath.Join(parent, "installer")
	require.NoError(t, os.Mkdir(child, 0755))
	chdir(t, child)

	_, err = config.Locate("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	// the parent directory is searched second
	writeConfig(t, parent, `starter = "https://x/a/s"`)
	found, err := config.Locate("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", config.FileName), found)

	writeConfig(t, child, `starter = "https://x/a/s"`)
	found, err = config.Locate("")
	require.NoError(t, err)
	assert.Equal(t, config.FileName, found)
}

func TestGenerate_RoundTrips(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, config.Generate(&buf, "https://x/a/s.git", []string{"https://x/a/p1.git"}))

	out := buf.String()
	assert.Contains(t, out, "# max_attempts = 5")
	assert.Contains(t, out, "[install]")

	path := writeConfig(t, t.TempDir(), out)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://x/a/s.git", cfg.Starter)
	assert.Equal(t, []string{"https://x/a/p1.git"}, cfg.Plugins)
	assert.Equal(t, 5, cfg.Install.MaxAttempts)
}

func TestWriteFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	path := "/work/" + config.FileName

	require.NoError(t, fsys.MkdirAll("/work", 0755))
	require.NoError(t, config.WriteFile(fsys, path, false))

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), config.DefaultStarter)

	err = config.WriteFile(fsys, path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	assert.NoError(t, config.WriteFile(fsys, path, true))
}
