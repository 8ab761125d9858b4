package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/lazysetup/pkg/errors"
)

// Environment variable names
const (
	// EnvAppName mirrors Neovim's NVIM_APPNAME
	EnvAppName = "NVIM_APPNAME"

	// DefaultAppName is the leaf directory name when NVIM_APPNAME is unset
	DefaultAppName = "nvim"
)

// BaseDirs are the per-user base directories a Layout is derived from
type BaseDirs struct {
	ConfigHome   string
	DataHome     string
	CacheHome    string
	StateHome    string
	LocalAppData string
	TempDir      string
}

// Layout is the set of editor directories for this machine
type Layout struct {
	// ConfigDir receives the starter repository
	ConfigDir string
	// DataDir is the editor data directory
	DataDir string
	// PluginDir receives plugin repositories
	PluginDir string
	CacheDir  string
	StateDir  string
}

// Resolve detects the platform and returns its layout
func Resolve() (Layout, error) {
	xdg.Reload()

	base := BaseDirs{
		ConfigHome:   xdg.ConfigHome,
		DataHome:     xdg.DataHome,
		CacheHome:    xdg.CacheHome,
		StateHome:    xdg.StateHome,
		LocalAppData: os.Getenv("LOCALAPPDATA"),
		TempDir:      os.TempDir(),
	}
	if base.LocalAppData == "" {
		base.LocalAppData = xdg.DataHome
	}
	if runtime.GOOS == "darwin" {
		base = neovimDarwinDefaults(base, xdg.Home)
	}

	layout := ForPlatform(runtime.GOOS, base, AppName())
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// neovimDarwinDefaults swaps the ~/Library locations adrg/xdg picks on macOS
// for the ~/.config style locations Neovim uses, unless XDG variables are set.
func neovimDarwinDefaults(base BaseDirs, home string) BaseDirs {
	if os.Getenv("XDG_CONFIG_HOME") == "" {
		base.ConfigHome = filepath.Join(home, ".config")
	}
	if os.Getenv("XDG_DATA_HOME") == "" {
		base.DataHome = filepath.Join(home, ".local", "share")
	}
	if os.Getenv("XDG_CACHE_HOME") == "" {
		base.CacheHome = filepath.Join(home, ".cache")
	}
	if os.Getenv("XDG_STATE_HOME") == "" {
		base.StateHome = filepath.Join(home, ".local", "state")
	}
	return base
}

// AppName returns NVIM_APPNAME or the default
func AppName() string {
	if name := os.Getenv(EnvAppName); name != "" {
		return name
	}
	return DefaultAppName
}

// ForPlatform builds the layout for goos from explicit base directories
func ForPlatform(goos string, base BaseDirs, appName string) Layout {
	if appName == "" {
		appName = DefaultAppName
	}

	if goos == "windows" {
		data := filepath.Join(base.LocalAppData, appName+"-data")
		return Layout{
			ConfigDir: filepath.Join(base.LocalAppData, appName),
			DataDir:   data,
			PluginDir: data,
			CacheDir:  filepath.Join(base.TempDir, appName),
			StateDir:  data,
		}
	}

	data := filepath.Join(base.DataHome, appName)
	return Layout{
		ConfigDir: filepath.Join(base.ConfigHome, appName),
		DataDir:   data,
		PluginDir: data,
		CacheDir:  filepath.Join(base.CacheHome, appName),
		StateDir:  filepath.Join(base.StateHome, appName),
	}
}

// Validate rejects layouts with empty or relative directories
func (l Layout) Validate() error {
	for name, dir := range map[string]string{
		"config": l.ConfigDir,
		"data":   l.DataDir,
		"plugin": l.PluginDir,
		"cache":  l.CacheDir,
		"state":  l.StateDir,
	} {
		if dir == "" || !filepath.IsAbs(dir) {
			return errors.Newf(errors.ErrInvalidInput, "%s directory %q is not an absolute path", name, dir).
				WithDetail("dir", name)
		}
	}
	return nil
}

// StarterRoot is where the starter repository is cloned
func (l Layout) StarterRoot() string {
	return l.ConfigDir
}

// PluginRoot is where plugin repositories are cloned
func (l Layout) PluginRoot() string {
	return l.PluginDir
}

// DeleteTargets lists the directories removed by the delete command, without duplicates
func (l Layout) DeleteTargets() []string {
	var out []string
	seen := make(map[string]bool)
	for _, dir := range []string{l.ConfigDir, l.DataDir, l.PluginDir, l.CacheDir, l.StateDir} {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		out = append(out, dir)
	}
	return out
}
