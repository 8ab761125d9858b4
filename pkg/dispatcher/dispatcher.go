// Package dispatcher maps a CLI verb onto the driver or the delete routine.
// It is the single entry point from the CLI layer into the install logic.
package dispatcher

import (
	"context"

	"github.com/arthur-debert/lazysetup/pkg/config"
	"github.com/arthur-debert/lazysetup/pkg/driver"
	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	"github.com/arthur-debert/lazysetup/pkg/git"
	"github.com/arthur-debert/lazysetup/pkg/install"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/arthur-debert/lazysetup/pkg/paths"
)

// CommandType represents the verb being executed
type CommandType string

const (
	CommandInstall CommandType = "install"
	CommandUpdate  CommandType = "update"
	CommandDelete  CommandType = "delete"
	CommandList    CommandType = "list"
)

// Options carries everything a verb may need; each verb uses only what it needs
type Options struct {
	// Config is required for install, update and list
	Config *config.Config
	Layout paths.Layout

	// Cloner defaults to the configured git binary
	Cloner git.Cloner
	// FileSystem defaults to the OS filesystem
	FileSystem filesystem.FS
}

// Result is what a verb produced
type Result struct {
	Command CommandType
	Units   []install.Unit
	Install *driver.Report
	Delete  *DeleteResult
}

// Dispatch runs cmdType
func Dispatch(ctx context.Context, cmdType CommandType, opts Options) (*Result, error) {
	logger := logging.GetLogger("dispatcher")
	logger.Debug().
		Str("command", string(cmdType)).
		Str("configDir", opts.Layout.ConfigDir).
		Str("pluginDir", opts.Layout.PluginDir).
		Msg("Dispatching command")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	switch cmdType {
	case CommandInstall, CommandUpdate:
		// update is a full re-clone, the same routine as install
		return runInstall(ctx, cmdType, opts, fsys)

	case CommandList:
		if opts.Config == nil {
			return nil, errors.New(errors.ErrInvalidInput, "list requires a configuration")
		}
		return &Result{
			Command: cmdType,
			Units:   BuildUnits(opts.Config, opts.Layout),
		}, nil

	case CommandDelete:
		res, err := Delete(fsys, opts.Layout.DeleteTargets())
		return &Result{Command: cmdType, Delete: res}, err

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown command: %s", cmdType)
	}
}

func runInstall(ctx context.Context, cmdType CommandType, opts Options, fsys filesystem.FS) (*Result, error) {
	logger := logging.GetLogger("dispatcher")

	cfg := opts.Config
	if cfg == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s requires a configuration", cmdType)
	}

	cloner := opts.Cloner
	if cloner == nil {
		cloner = git.NewCloner(cfg.Git.Binary)
	}

	installer := install.NewInstaller(install.Options{
		Cloner:     cloner,
		FileSystem: fsys,
		Depth:      cfg.Install.Depth,
	})
	d := driver.New(installer, driver.Options{
		MaxAttempts:    cfg.Install.MaxAttempts,
		Concurrency:    cfg.Install.Concurrency,
		InitialBackoff: cfg.Install.InitialBackoff,
		MaxBackoff:     cfg.Install.MaxBackoff,
	})

	units := BuildUnits(cfg, opts.Layout)
	logger.Info().
		Str("command", string(cmdType)).
		Int("units", len(units)).
		Msgf("%d repositories to install", len(units))

	report, err := d.Run(ctx, units)
	result := &Result{Command: cmdType, Units: units, Install: report}

	logger.Info().
		Int("succeeded", report.Succeeded).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Int("unfinished", report.Unfinished()).
		Msg("Install finished")

	if err != nil {
		return result, errors.Wrap(err, errors.ErrInternal, "install interrupted")
	}
	if report.Failed > 0 {
		return result, errors.Newf(errors.ErrAttempts, "%d of %d repositories could not be installed", report.Failed, report.Total())
	}
	if report.Unfinished() > 0 {
		return result, errors.Newf(errors.ErrInternal, "%d of %d repositories never finished", report.Unfinished(), report.Total())
	}
	return result, nil
}

// BuildUnits returns the starter unit followed by one unit per plugin, in config order
func BuildUnits(cfg *config.Config, layout paths.Layout) []install.Unit {
	units := make([]install.Unit, 0, len(cfg.Plugins)+1)
	units = append(units, install.NewUnit(install.KindStarter, cfg.Starter, layout.StarterRoot()))
	for _, p := range cfg.Plugins {
		units = append(units, install.NewUnit(install.KindPlugin, p, layout.PluginRoot()))
	}
	return units
}
