// Package target derives install target names from repository URLs.
//
// A target name is the final path segment of the URL with every ".git"
// substring removed:
//
//	https://github.com/folke/lazy.nvim.git -> lazy.nvim
//	https://github.com/LazyVim/starter     -> starter
//
// A URL without any "/" has no target name.
package target

import (
	"strings"

	"github.com/arthur-debert/lazysetup/pkg/errors"
)

// GitSuffix is the marker stripped from the final URL segment
const GitSuffix = ".git"

// Resolve returns the target name for url and whether one could be derived.
func Resolve(url string) (string, bool) {
	idx := strings.LastIndex(url, "/")
	if idx < 0 {
		return "", false
	}

	name := url[idx+1:]
	if strings.Contains(name, GitSuffix) {
		name = strings.ReplaceAll(name, GitSuffix, "")
	}

	// "https://host/owner/" or "https://host/owner/.git" cannot name a directory
	if name == "" {
		return "", false
	}

	return name, true
}

// MustResolve is Resolve with the undefined case reported as an error.
func MustResolve(url string) (string, error) {
	name, ok := Resolve(url)
	if !ok {
		return "", errors.Newf(errors.ErrTargetName, "no target name in %q", url).
			WithDetail("url", url)
	}
	return name, nil
}
