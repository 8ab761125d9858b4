package target_test

import (
	"testing"

	"github.com/arthur-debert/lazysetup/pkg/errors"
	"github.com/arthur-debert/lazysetup/pkg/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"with git suffix", "https://example.com/owner/plugin-x.git", "plugin-x", true},
		{"without git suffix", "https://example.com/owner/plugin-x", "plugin-x", true},
		{"dotted name", "https://x/a/foo.bar.git", "foo.bar", true},
		{"repeated marker", "https://x/a/foo.git.git", "foo", true},
		{"marker in the middle", "https://x/a/my.gitlab.git", "mylab", true},
		{"marker only in host", "https://git.example.com/a/plugin", "plugin", true},
		{"scp style", "git@github.com:folke/lazy.nvim.git", "lazy.nvim", true},
		{"relative path", "owner/repo", "repo", true},
		{"no separator", "lazy.nvim.git", "", false},
		{"empty url", "", "", false},
		{"trailing slash", "https://x/a/", "", false},
		{"only marker", "https://x/a/.git", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := target.Resolve(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_NeverKeepsMarker(t *testing.T) {
	urls := []string{
		"https://x/a/b.git",
		"https://x/a/.gitb.git",
		"https://x/a/a.git.b.git.c",
	}
	for _, url := range urls {
		name, ok := target.Resolve(url)
		require.True(t, ok, url)
		assert.NotContains(t, name, target.GitSuffix, url)
	}
}

func TestMustResolve(t *testing.T) {
	name, err := target.MustResolve("https://github.com/LazyVim/starter")
	require.NoError(t, err)
	assert.Equal(t, "starter", name)

	_, err = target.MustResolve("starter")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetName))
}
