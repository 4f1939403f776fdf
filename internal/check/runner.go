// Package check runs external commands as checks and classifies their result. A command that ran to completion yields
// an Outcome (Pass or Fail); a command that could not be run at all yields an `errors.LaunchError`.
package check

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/exec"
)

const waitDelay = 2 * time.Second

// TaskRunner is an abstraction over various task-runners / execution environments.
// They are expected to implement the `exec.Command` interface in turn, which is mapped to the Command type from
// `os/exec`
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(error) (int, error)
}

// Runner runs a single command synchronously. It holds no state between invocations, so a Runner can be shared
// between goroutines.
type Runner struct {
	TaskRunner TaskRunner
	Log        *zap.SugaredLogger

	// Timeout stops the command once it expires. Zero disables the timeout.
	Timeout time.Duration
	// Echo receives a live copy of the command's output. It is optional.
	Echo io.Writer
}

// Run executes the command described by `spec` and waits for it to finish.
//
// stdout & stderr are attached to the same writer, which makes `os/exec` hand a single pipe to the child for both
// streams. The captured output is therefore in the order the child wrote it.
func (r Runner) Run(ctx context.Context, spec CommandSpec) (Outcome, error) {
	command := spec.String()

	if spec.Name == "" {
		return Outcome{}, errors.NewLaunchError(errors.ReasonInvalidCommand, command, "no command was specified")
	}

	if spec.WorkingDirectory != "" {
		info, err := os.Stat(spec.WorkingDirectory)
		if err != nil {
			return Outcome{}, errors.NewLaunchError(
				errors.ReasonInvalidDirectory, command, "unable to use working directory %q: %s", spec.WorkingDirectory, err,
			)
		}

		if !info.IsDir() {
			return Outcome{}, errors.NewLaunchError(
				errors.ReasonInvalidDirectory, command, "working directory %q is not a directory", spec.WorkingDirectory,
			)
		}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	output := new(bytes.Buffer)
	var w io.Writer = output
	if r.Echo != nil {
		w = io.MultiWriter(output, r.Echo)
	}

	cmd, err := r.TaskRunner.NewCommand(ctx, exec.CommandConfig{
		Name:      spec.Name,
		Args:      spec.Args,
		Dir:       spec.WorkingDirectory,
		Env:       spec.environ(),
		Stdout:    w,
		Stderr:    w,
		WaitDelay: waitDelay,
	})
	if err != nil {
		return Outcome{}, errors.NewLaunchError(errors.ReasonUnknown, command, "unable to spawn sub-process: %s", err)
	}

	log := r.log()

	log.Debugf("Executing %q", command)
	if err := cmd.Start(); err != nil {
		if ctxErr := interruption(ctx, command); ctxErr != nil {
			return Outcome{}, ctxErr
		}

		return Outcome{}, errors.NewLaunchError(launchReason(err), command, "unable to execute %q: %s", command, err)
	}
	defer log.Debugf("Finished executing %q", command)

	if err := cmd.Wait(); err != nil {
		// The command itself exited successfully, only a process it left behind kept the pipe open.
		if errors.Is(err, exec.ErrWaitDelay) {
			log.Debugf("%q left a process behind that was still writing output", command)
			return Outcome{Status: StatusPass, Output: output.String()}, nil
		}

		// A command we stopped ourselves has no verdict.
		if ctxErr := interruption(ctx, command); ctxErr != nil {
			return Outcome{}, ctxErr
		}

		code, e := r.TaskRunner.GetExitStatusFromError(err)
		if e != nil {
			return Outcome{}, errors.NewSystemError("error during execution of %q: %s", command, err)
		}

		log.Debugf("%q exited with code %d", command, code)
		return Outcome{Status: StatusFail, Output: output.String(), ExitCode: code}, nil
	}

	return Outcome{Status: StatusPass, Output: output.String()}, nil
}

func (r Runner) log() *zap.SugaredLogger {
	if r.Log == nil {
		return zap.NewNop().Sugar()
	}

	return r.Log
}

func interruption(ctx context.Context, command string) error {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return errors.NewLaunchError(errors.ReasonTimeout, command, "%q timed out", command)
	default:
		return errors.NewLaunchError(errors.ReasonCanceled, command, "%q was canceled", command)
	}
}

func launchReason(err error) errors.LaunchReason {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return errors.ReasonNotFound
	case errors.Is(err, fs.ErrPermission):
		return errors.ReasonPermissionDenied
	default:
		return errors.ReasonUnknown
	}
}
