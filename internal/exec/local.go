// Package exec exposes task runners that can execute arbitrary commands. This is mostly a thin wrapper around
// `os/exec` plus a mocked implementation in `internal/mocks`.
package exec

import (
	"context"
	"os/exec"

	"github.com/rwx-research/hookcheck/internal/errors"
)

// ErrNotFound is returned when an executable could not be located on the PATH.
var ErrNotFound = exec.ErrNotFound

// ErrWaitDelay is returned by Wait when a command exited successfully but its output pipes were still held open (e.g.
// by a background process) once the wait delay expired.
var ErrWaitDelay = exec.ErrWaitDelay

// Local is a local executioner. It wraps `os/exec`
type Local struct{}

// NewCommand returns a new command that can then be executed.
func (l Local) NewCommand(ctx context.Context, cfg CommandConfig) (Command, error) {
	if cfg.Name == "" {
		return nil, errors.NewInternalError("unable to create a command without a name")
	}

	//nolint:gosec // Spawning a user-configurable sub-process is expected here.
	cmd := exec.CommandContext(ctx, cfg.Name, cfg.Args...)

	cmd.Dir = cfg.Dir
	cmd.Stderr = cfg.Stderr
	cmd.Stdout = cfg.Stdout
	cmd.WaitDelay = cfg.WaitDelay

	if len(cfg.Env) > 0 {
		cmd.Env = append(cmd.Environ(), cfg.Env...)
	}

	return cmd, nil
}

// GetExitStatusFromError extracts the exit code from an error
func (l Local) GetExitStatusFromError(err error) (int, error) {
	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode(), nil
	}

	return 0, errors.NewInternalError("Expected error to be of type exec.ExitError, received %T", err)
}
