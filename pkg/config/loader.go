package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SearchPaths are tried in order when no explicit path is given
var SearchPaths = []string{
	FileName,
	filepath.Join("..", FileName),
}

// Locate returns explicit if set, otherwise the first existing search path
func Locate(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, candidate := range SearchPaths {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigLoad, "%s config file not found", FileName).
		WithDetail("searched", SearchPaths)
}

// Load reads defaults, the file at path and environment overrides, in that order
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path)
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User file
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "read %s failed", path).
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "read %s failed", path).
			WithDetail("path", path)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("starter", cfg.Starter).
		Int("plugins", len(cfg.Plugins)).
		Int("maxAttempts", cfg.Install.MaxAttempts).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps LAZYSETUP_INSTALL_MAX_ATTEMPTS to install.max_attempts.
// Only the section separator becomes a dot; key names keep their underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range []string{"install", "git"} {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}
