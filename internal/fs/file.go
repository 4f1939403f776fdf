package fs

import (
	"io"
)

// File is a generic interface that represents a file that was created on a file-system. It is modelled after the
// default 'os.File' from the standard library.
type File interface {
	io.WriteCloser
	Name() string
}
