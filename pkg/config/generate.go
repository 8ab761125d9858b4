package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultStarter is written by the init command
const DefaultStarter = "https://github.com/LazyVim/starter"

// DefaultPlugins seeds a generated file
var DefaultPlugins = []string{
	"https://github.com/folke/lazy.nvim.git",
	"https://github.com/LazyVim/LazyVim.git",
}

// userFile is the part of the config users are expected to edit
type userFile struct {
	Starter string   `toml:"starter"`
	Plugins []string `toml:"plugins,multiline"`
}

// Generate writes a config file: starter and plugins, then the commented-out defaults
func Generate(w io.Writer, starter string, plugins []string) error {
	if starter == "" {
		starter = DefaultStarter
	}
	if plugins == nil {
		plugins = []string{}
	}

	data, err := toml.Marshal(userFile{Starter: starter, Plugins: plugins})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}

	_, err = fmt.Fprintf(w, "# lazysetup configuration\n\n%s\n%s", data, commentOutConfigValues(GetDefaultsContent()))
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write config")
	}
	return nil
}

// WriteFile generates a config at path, refusing to replace an existing file unless force is set
func WriteFile(fsys filesystem.FS, path string, force bool) error {
	if !force && filesystem.Exists(fsys, path) {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}

	var buf strings.Builder
	if err := Generate(&buf, DefaultStarter, DefaultPlugins); err != nil {
		return err
	}
	if err := fsys.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

// commentOutConfigValues comments out every assignment, keeping comments,
// blank lines and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
