package mocks

import (
	"os"

	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/fs"
)

// FileSystem is a mocked implementation of 'fs.FileSystem'.
type FileSystem struct {
	MockCreate   func(filePath string) (fs.File, error)
	MockGetwd    func() (string, error)
	MockMkdirAll func(path string, perm os.FileMode) error
	MockStat     func(name string) (os.FileInfo, error)
}

// Create either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Create(filePath string) (fs.File, error) {
	if f.MockCreate != nil {
		return f.MockCreate(filePath)
	}

	return nil, errors.NewInternalError("MockCreate was not configured")
}

// Getwd either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Getwd() (string, error) {
	if f.MockGetwd != nil {
		return f.MockGetwd()
	}

	return "", errors.NewInternalError("MockGetwd was not configured")
}

// MkdirAll either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	if f.MockMkdirAll != nil {
		return f.MockMkdirAll(path, perm)
	}

	return errors.NewInternalError("MockMkdirAll was not configured")
}

// Stat either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Stat(name string) (os.FileInfo, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.NewInternalError("MockStat was not configured")
}
