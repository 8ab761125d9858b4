// Package gittest provides a Cloner stand-in for tests.
package gittest

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/filesystem"
)

// MarkerFile is written into every fake clone
const MarkerFile = "HEAD"

// Call records one Clone invocation
type Call struct {
	URL   string
	Dest  string
	Depth int
}

// FakeCloner "clones" by creating dest with a marker file in FS.
// FailFunc, when set, decides per URL and attempt (1-based) whether to fail.
type FakeCloner struct {
	FS       filesystem.FS
	FailFunc func(url string, attempt int) error

	mu       sync.Mutex
	calls    []Call
	attempts map[string]int
}

// NewFakeCloner creates a fake that always succeeds
func NewFakeCloner(fsys filesystem.FS) *FakeCloner {
	return &FakeCloner{FS: fsys}
}

// Clone implements git.Cloner
func (f *FakeCloner) Clone(ctx context.Context, url, dest string, depth int) error {
	f.mu.Lock()
	if f.attempts == nil {
		f.attempts = make(map[string]int)
	}
	f.attempts[url]++
	attempt := f.attempts[url]
	f.calls = append(f.calls, Call{URL: url, Dest: dest, Depth: depth})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrCommandLaunch, "context done")
	}

	if f.FailFunc != nil {
		if err := f.FailFunc(url, attempt); err != nil {
			return err
		}
	}

	if err := f.FS.MkdirAll(dest, 0755); err != nil {
		return err
	}
	return f.FS.WriteFile(filepath.Join(dest, MarkerFile), []byte(url), 0644)
}

// Calls returns a copy of all recorded invocations
func (f *FakeCloner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Attempts returns how many times url was cloned
func (f *FakeCloner) Attempts(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts[url]
}

// CloneFailure builds the error a real clone returns on a non-zero exit
func CloneFailure(stderr string) error {
	return errors.New(errors.ErrCloneFailed, "git clone exited with status 128").
		WithDetail("stderr", stderr)
}

// AlwaysFail returns a FailFunc failing every attempt for the given URLs
func AlwaysFail(urls ...string) func(string, int) error {
	set := make(map[string]bool, len(urls))
	for _, u := range urls {
		set[u] = true
	}
	return func(url string, _ int) error {
		if set[url] {
			return CloneFailure("fatal: unable to access '" + url + "': Could not resolve host")
		}
		return nil
	}
}

// FailFirst returns a FailFunc failing the first n attempts of every URL
func FailFirst(n int) func(string, int) error {
	return func(url string, attempt int) error {
		if attempt <= n {
			return CloneFailure("fatal: early EOF")
		}
		return nil
	}
}
