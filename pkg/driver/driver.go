// Package driver runs a set of install units to completion.
//
// Every unit gets its own goroutine, started in input order and bounded by
// Options.Concurrency. A unit whose attempt is retryable waits out an
// exponential backoff and tries again. It never holds up its siblings while
// waiting. With MaxAttempts == 0 a unit retries until the context ends.
package driver

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/install"
	"github.com/arthur-debert/lazysetup/pkg/logging"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Defaults used when Options fields are zero
const (
	DefaultConcurrency    = 8
	DefaultInitialBackoff = time.Second
	DefaultMaxBackoff     = 30 * time.Second

	// each wait doubles, jittered by backoff's default randomization factor
	backoffMultiplier = 2
)

// Executor performs a single attempt at a unit; *install.Installer satisfies it
type Executor interface {
	Execute(ctx context.Context, u install.Unit) install.Outcome
}

// Options configures retry and fan-out
type Options struct {
	// MaxAttempts caps attempts per unit; 0 means unbounded
	MaxAttempts    int
	Concurrency    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Driver runs units through an Executor
type Driver struct {
	exec   Executor
	opts   Options
	logger zerolog.Logger
}

// New creates a driver, filling zero options with defaults
func New(exec Executor, opts Options) *Driver {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = DefaultInitialBackoff
	}
	if opts.MaxBackoff < opts.InitialBackoff {
		opts.MaxBackoff = DefaultMaxBackoff
		if opts.MaxBackoff < opts.InitialBackoff {
			opts.MaxBackoff = opts.InitialBackoff
		}
	}
	if opts.MaxAttempts < 0 {
		opts.MaxAttempts = 0
	}
	return &Driver{
		exec:   exec,
		opts:   opts,
		logger: logging.GetLogger("driver"),
	}
}

// Options returns the effective options
func (d *Driver) Options() Options {
	return d.opts
}

// Run executes every unit until each reaches a terminal state or ctx ends.
// The report is always returned; the error is ctx.Err() when cancelled.
func (d *Driver) Run(ctx context.Context, units []install.Unit) (*Report, error) {
	done := logging.LogOperationStart(d.logger, "run")
	defer done()

	results := make([]Result, len(units))
	for i, u := range units {
		results[i] = Result{Unit: u, Name: u.Name(), State: install.StatePending}
	}

	var finished atomic.Int64
	total := len(units)

	g := new(errgroup.Group)
	g.SetLimit(d.opts.Concurrency)

	for i := range units {
		if ctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go.mod targets go1.21 loop semantics
		// slot i is written only by this goroutine
		g.Go(func() error {
			results[i] = d.runUnit(ctx, units[i])
			if results[i].State.Terminal() {
				n := finished.Add(1)
				d.logger.Info().
					Str("name", results[i].Name).
					Str("state", results[i].State.String()).
					Int("attempts", results[i].Attempts).
					Msgf("[%d/%d] done", n, total)
			}
			return nil
		})
	}

	_ = g.Wait()

	report := newReport(results)
	if err := ctx.Err(); err != nil {
		d.logger.Warn().
			Err(err).
			Int("unfinished", report.Unfinished()).
			Msg("Run cancelled before all units finished")
		return report, err
	}
	return report, nil
}

func (d *Driver) exponential() *backoff.ExponentialBackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = d.opts.InitialBackoff
	eb.MaxInterval = d.opts.MaxBackoff
	eb.Multiplier = backoffMultiplier
	eb.MaxElapsedTime = 0
	eb.Reset()
	return eb
}

func (d *Driver) newBackOff(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = d.exponential()
	if d.opts.MaxAttempts > 0 {
		b = backoff.WithMaxRetries(b, uint64(d.opts.MaxAttempts-1))
	}
	return backoff.WithContext(b, ctx)
}

func (d *Driver) runUnit(ctx context.Context, u install.Unit) Result {
	res := Result{Unit: u, Name: u.Name(), State: install.StatePending}

	operation := func() error {
		res.Attempts++
		out := d.exec.Execute(ctx, u)
		res.State = out.State
		res.Reason = out.Reason
		res.Err = out.Err
		if out.Name != "" {
			res.Name = out.Name
		}
		if out.Retryable() {
			if out.Err != nil {
				return out.Err
			}
			return errors.Newf(errors.ErrInternal, "attempt %d at %s is retryable but reported no error", res.Attempts, res.Name)
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		d.logger.Debug().
			Str("name", res.Name).
			Int("attempt", res.Attempts).
			Dur("wait", wait).
			Msg("Rescheduling")
	}

	err := backoff.RetryNotify(operation, d.newBackOff(ctx), notify)
	if err != nil && ctx.Err() == nil && res.State == install.StateFailedRetryable {
		res.State = install.StateFailed
		res.Err = errors.Wrapf(err, errors.ErrAttempts, "giving up on %s after %d attempts", res.Name, res.Attempts)
		d.logger.Error().
			Err(err).
			Str("name", res.Name).
			Int("attempts", res.Attempts).
			Msg("Giving up")
	}
	return res
}
