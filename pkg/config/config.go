package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/lazysetup/pkg/errors"
)

// FileName is the configuration file looked up in the working directory
const FileName = "lazyvim.toml"

// EnvPrefix prefixes environment overrides
const EnvPrefix = "LAZYSETUP_"

// Config is the parsed lazyvim.toml
type Config struct {
	Starter string   `koanf:"starter"`
	Plugins []string `koanf:"plugins"`
	Install Install  `koanf:"install"`
	Git     Git      `koanf:"git"`

	// Source is the file the config was read from
	Source string `koanf:"-"`
}

// Install tunes how repositories are cloned and retried
type Install struct {
	MaxAttempts    int           `koanf:"max_attempts"`
	Concurrency    int           `koanf:"concurrency"`
	InitialBackoff time.Duration `koanf:"initial_backoff"`
	MaxBackoff     time.Duration `koanf:"max_backoff"`
	Depth          int           `koanf:"depth"`
}

// Git selects the version-control executable
type Git struct {
	Binary string `koanf:"binary"`
}

// Validate checks the invariants: a starter is required, plugins may be empty
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Starter) == "" {
		return errors.New(errors.ErrConfigValid, "starter must not be empty").
			WithDetail("source", c.Source)
	}
	for i, p := range c.Plugins {
		if strings.TrimSpace(p) == "" {
			return errors.Newf(errors.ErrConfigValid, "plugins[%d] must not be empty", i).
				WithDetail("source", c.Source)
		}
	}
	if c.Install.MaxAttempts < 0 {
		return errors.New(errors.ErrConfigValid, "install.max_attempts must be >= 0")
	}
	if c.Install.Concurrency < 0 {
		return errors.New(errors.ErrConfigValid, "install.concurrency must be >= 0")
	}
	if c.Install.Depth < 1 {
		return errors.New(errors.ErrConfigValid, "install.depth must be >= 1; clones are always shallow")
	}
	return nil
}
