package mocks

import (
	"strings"
)

// File is a mocked implementation of 'fs.File', based on a common `strings.Builder`
type File struct {
	*strings.Builder

	MockClose func() error
	MockName  func() string
}

// Close either calls the configured mock of itself or returns nil
func (f *File) Close() error {
	if f.MockClose != nil {
		return f.MockClose()
	}

	return nil
}

// Name either calls the configured mock of itself or returns an empty string
func (f *File) Name() string {
	if f.MockName != nil {
		return f.MockName()
	}

	return ""
}
