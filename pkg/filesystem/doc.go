// Package filesystem provides the filesystem seam used by install units
// and the delete command.
//
// NewOS talks to the real disk. NewAferoFS wraps any afero.Fs, which lets
// tests run units against an in-memory tree.
package filesystem
