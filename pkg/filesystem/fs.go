package filesystem

import (
	"io/fs"
)

// FS is the subset of filesystem operations lazysetup performs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	RemoveAll(path string) error
}

// Exists reports whether path exists. Errors other than "not exist" count as existing.
func Exists(fsys FS, path string) bool {
	_, err := fsys.Stat(path)
	if err == nil {
		return true
	}
	return !isNotExist(err)
}
