package paths_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unixBase(root string) paths.BaseDirs {
	return paths.BaseDirs{
		ConfigHome: filepath.Join(root, ".config"),
		DataHome:   filepath.Join(root, ".local", "share"),
		CacheHome:  filepath.Join(root, ".cache"),
		StateHome:  filepath.Join(root, ".local", "state"),
	}
}

func TestForPlatform_Unix(t *testing.T) {
	root := filepath.FromSlash("/home/user")
	l := paths.ForPlatform("linux", unixBase(root), "nvim")

	assert.Equal(t, filepath.Join(root, ".config", "nvim"), l.ConfigDir)
	assert.Equal(t, filepath.Join(root, ".local", "share", "nvim"), l.DataDir)
	assert.Equal(t, l.DataDir, l.PluginDir)
	assert.Equal(t, filepath.Join(root, ".cache", "nvim"), l.CacheDir)
	assert.Equal(t, filepath.Join(root, ".local", "state", "nvim"), l.StateDir)

	assert.Equal(t, l.ConfigDir, l.StarterRoot())
	assert.Equal(t, l.PluginDir, l.PluginRoot())
	assert.Equal(t, []string{l.ConfigDir, l.DataDir, l.CacheDir, l.StateDir}, l.DeleteTargets())
}

func TestForPlatform_Windows(t *testing.T) {
	base := paths.BaseDirs{
		LocalAppData: filepath.FromSlash("/Users/me/AppData/Local"),
		TempDir:      filepath.FromSlash("/Users/me/AppData/Local/Temp"),
	}
	l := paths.ForPlatform("windows", base, "")

	assert.Equal(t, filepath.Join(base.LocalAppData, "nvim"), l.ConfigDir)
	assert.Equal(t, filepath.Join(base.LocalAppData, "nvim-data"), l.DataDir)
	assert.Equal(t, filepath.Join(base.TempDir, "nvim"), l.CacheDir)

	// data and state share a directory, so it is removed once
	assert.Equal(t, []string{l.ConfigDir, l.DataDir, l.CacheDir}, l.DeleteTargets())
}

func TestForPlatform_AppName(t *testing.T) {
	l := paths.ForPlatform("darwin", unixBase("/home/user"), "lazyvim")
	assert.Equal(t, "lazyvim", filepath.Base(l.ConfigDir))
	assert.Equal(t, "lazyvim", filepath.Base(l.StateDir))
}

func TestValidate(t *testing.T) {
	l := paths.ForPlatform("linux", unixBase(t.TempDir()), "nvim")
	require.NoError(t, l.Validate())

	l.CacheDir = "relative/cache"
	err := l.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolve_HonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG variables do not apply on windows")
	}
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv(paths.EnvAppName, "")

	l, err := paths.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "nvim"), l.ConfigDir)
	assert.Equal(t, filepath.Join(root, "data", "nvim"), l.PluginDir)
	assert.Equal(t, filepath.Join(root, "cache", "nvim"), l.CacheDir)
	assert.Equal(t, filepath.Join(root, "state", "nvim"), l.StateDir)
}

func TestAppName(t *testing.T) {
	t.Setenv(paths.EnvAppName, "")
	assert.Equal(t, "nvim", paths.AppName())

	t.Setenv(paths.EnvAppName, "astro")
	assert.Equal(t, "astro", paths.AppName())
}
