// Package install materializes one repository on disk.
//
// A Unit pairs a source URL with the directory it is cloned under. The
// Installer executes units: it clears any previous copy at the destination
// and runs a shallow clone. A failed clone leaves the unit retryable, and
// the next attempt starts again from an empty destination.
package install

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	"github.com/arthur-debert/lazysetup/pkg/git"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/arthur-debert/lazysetup/pkg/target"
	"github.com/rs/zerolog"
)

// Kind tells which well-known root a unit is installed under
type Kind string

const (
	KindStarter Kind = "starter"
	KindPlugin  Kind = "plugin"
)

// DefaultDepth is the clone depth used when none is configured
const DefaultDepth = 1

// Unit is one (source URL, destination root) pair
type Unit struct {
	Kind            Kind
	SourceURL       string
	DestinationRoot string
}

// NewUnit creates a unit
func NewUnit(kind Kind, sourceURL, destinationRoot string) Unit {
	return Unit{
		Kind:            kind,
		SourceURL:       sourceURL,
		DestinationRoot: destinationRoot,
	}
}

// Name returns the target name, empty when the URL has none
func (u Unit) Name() string {
	name, _ := target.Resolve(u.SourceURL)
	return name
}

// Dest returns the full destination path, empty when the URL has no target name
func (u Unit) Dest() string {
	name, ok := target.Resolve(u.SourceURL)
	if !ok {
		return ""
	}
	return filepath.Join(u.DestinationRoot, name)
}

// Installer executes units against a filesystem and a cloner
type Installer struct {
	cloner git.Cloner
	fs     filesystem.FS
	depth  int
	logger zerolog.Logger
}

// Options configures an Installer
type Options struct {
	Cloner     git.Cloner
	FileSystem filesystem.FS
	// Depth is the clone depth; values below 1 use DefaultDepth
	Depth int
}

// NewInstaller creates an installer, defaulting to the git executable and the OS filesystem
func NewInstaller(opts Options) *Installer {
	cloner := opts.Cloner
	if cloner == nil {
		cloner = git.NewCloner("")
	}
	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Installer{
		cloner: cloner,
		fs:     fsys,
		depth:  depth,
		logger: logging.GetLogger("install"),
	}
}

// Execute makes one attempt at installing u
func (i *Installer) Execute(ctx context.Context, u Unit) Outcome {
	name, err := target.MustResolve(u.SourceURL)
	if err != nil {
		i.logger.Error().
			Str("url", u.SourceURL).
			Str("kind", string(u.Kind)).
			Msg("Target name is empty, skipping download")
		return Outcome{
			State:  StateSkipped,
			Reason: ReasonEmptyName,
			Err:    err,
		}
	}

	dest := filepath.Join(u.DestinationRoot, name)
	logger := i.logger.With().
		Str("name", name).
		Str("kind", string(u.Kind)).
		Logger()

	// a previous partial clone must not survive into this attempt
	if err := i.fs.RemoveAll(dest); err != nil {
		logger.Error().Err(err).Str("dest", dest).Msg("Failed to clear destination, will retry later")
		return Outcome{
			State: StateFailedRetryable,
			Name:  name,
			Dest:  dest,
			Err:   errors.Wrapf(err, errors.ErrDirRemove, "failed to clear %s", dest),
		}
	}

	if err := i.fs.MkdirAll(u.DestinationRoot, 0755); err != nil {
		logger.Error().Err(err).Str("root", u.DestinationRoot).Msg("Failed to create install root, will retry later")
		return Outcome{
			State: StateFailedRetryable,
			Name:  name,
			Dest:  dest,
			Err:   errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", u.DestinationRoot),
		}
	}

	logger.Info().
		Str("url", u.SourceURL).
		Str("dest", dest).
		Int("depth", i.depth).
		Msg("Cloning")

	if err := i.cloner.Clone(ctx, u.SourceURL, dest, i.depth); err != nil {
		event := logger.Error().Err(err)
		if stderr := git.Stderr(err); stderr != "" {
			event = event.Str("stderr", stderr)
		}
		event.Msg("Install failed, will retry later")
		return Outcome{
			State: StateFailedRetryable,
			Name:  name,
			Dest:  dest,
			Err:   err,
		}
	}

	logger.Info().Str("dest", dest).Msg("Installed")
	return Outcome{
		State: StateSucceeded,
		Name:  name,
		Dest:  dest,
	}
}
