// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"

	"github.com/rwx-research/hookcheck/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Create creates or truncates the named file.
func (l Local) Create(filePath string) (File, error) {
	f, err := os.Create(filePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Getwd returns the current working directory.
func (l Local) Getwd() (string, error) {
	wd, err := os.Getwd()
	return wd, errors.WithStack(err)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (l Local) MkdirAll(path string, perm os.FileMode) error {
	return errors.WithStack(os.MkdirAll(path, perm))
}

// Stat returns a FileInfo describing the named file.
func (l Local) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	return info, errors.WithStack(err)
}
