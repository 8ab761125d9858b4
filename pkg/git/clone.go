// Package git runs the external version-control client.
//
// Only one operation is needed: a shallow clone. Failures are classified
// so callers can tell a missing executable (ErrCommandLaunch) from a clone
// that ran and exited non-zero (ErrCloneFailed, with stderr attached).
package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultBinary is looked up on PATH when no binary is configured
const DefaultBinary = "git"

// WaitDelay bounds how long a cancelled clone may hold its output pipes open.
// git-remote-https can outlive a killed git and keep stderr open.
const WaitDelay = 5 * time.Second

// Cloner materializes a repository at dest
type Cloner interface {
	Clone(ctx context.Context, url, dest string, depth int) error
}

// CommandCloner clones by running the git executable
type CommandCloner struct {
	binary string
	logger zerolog.Logger
}

// NewCloner creates a cloner for the given executable; empty means DefaultBinary
func NewCloner(binary string) *CommandCloner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CommandCloner{
		binary: binary,
		logger: logging.GetLogger("git"),
	}
}

// Binary returns the executable this cloner runs
func (c *CommandCloner) Binary() string {
	return c.binary
}

// CloneArgs builds the argument list: clone <url> <dest> --depth <n>
func CloneArgs(url, dest string, depth int) []string {
	args := []string{"clone", url, dest}
	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth))
	}
	return args
}

// Clone runs the clone and waits for it to exit
func (c *CommandCloner) Clone(ctx context.Context, url, dest string, depth int) error {
	args := CloneArgs(url, dest, depth)
	logging.LogCommand(c.logger, c.binary, args)

	cmd := c.command(ctx, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		c.logger.Trace().
			Str("stdout", stdout.String()).
			Str("stderr", stderr.String()).
			Msg("Command output")
		return nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return errors.Wrapf(err, errors.ErrCloneFailed, "%s clone %s", c.binary, url).
			WithDetail("stderr", strings.TrimSpace(stderr.String())).
			WithDetail("exitCode", exitErr.ExitCode()).
			WithDetail("dest", dest)
	}

	return errors.Wrapf(err, errors.ErrCommandLaunch, "failed to run %s", c.binary).
		WithDetail("dest", dest)
}

func (c *CommandCloner) command(ctx context.Context, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.WaitDelay = WaitDelay
	return cmd
}

// Stderr returns the captured stderr attached to a clone failure, if any
func Stderr(err error) string {
	details := errors.GetErrorDetails(err)
	if details == nil {
		return ""
	}
	s, _ := details["stderr"].(string)
	return s
}
