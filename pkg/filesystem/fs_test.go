package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lazysetup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystems(t *testing.T) {
	impls := map[string]struct {
		fs   filesystem.FS
		root string
	}{
		"os":     {filesystem.NewOS(), t.TempDir()},
		"memory": {filesystem.NewMemory(), "/work"},
	}

	for name, impl := range impls {
		t.Run(name, func(t *testing.T) {
			fsys := impl.fs
			dir := filepath.Join(impl.root, "nvim", "lazy")
			file := filepath.Join(dir, "sentinel")

			assert.False(t, filesystem.Exists(fsys, dir))

			require.NoError(t, fsys.MkdirAll(dir, 0755))
			require.NoError(t, fsys.WriteFile(file, []byte("x"), 0644))
			assert.True(t, filesystem.Exists(fsys, file))

			data, err := fsys.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "x", string(data))

			_, err = fsys.ReadFile(dir)
			assert.Error(t, err)

			require.NoError(t, fsys.RemoveAll(filepath.Join(impl.root, "nvim")))
			assert.False(t, filesystem.Exists(fsys, file))

			// removing something already gone is not an error
			assert.NoError(t, fsys.RemoveAll(filepath.Join(impl.root, "nvim")))
		})
	}
}
