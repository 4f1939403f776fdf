// Package cli holds the main business logic in our CLI. This is mainly:
// 1. Building & running the checks of a hook.
// 2. User-friendly logging & reporting
// However, this package _does not_ implement the actual terminal UI. That part is handled by `cmd/hookcheck`.
package cli

import (
	"io"

	"go.uber.org/zap"

	"github.com/rwx-research/hookcheck/internal/fs"
	"github.com/rwx-research/hookcheck/internal/registry"
)

// Service is the main CLI service.
type Service struct {
	Log        *zap.SugaredLogger
	Registry   *registry.Registry
	FileSystem fs.FileSystem
	// Stdout receives the summary of a hook run.
	Stdout io.Writer
}
