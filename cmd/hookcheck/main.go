// Package main holds the command line interface for hookcheck. The package itself is mainly concerned with
// configuring the necessary options before passing control to `internal/cli`, which holds the business logic itself.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rwx-research/hookcheck/internal/errors"
)

// exit codes of `hookcheck`
const (
	exitCodeFailure     = 1
	exitCodeLaunchError = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	// Logging is expected to take place in `internal/cli`, as text output is the primary way of communicating
	// to a user on the terminal and is therefore one of our main concerns.
	// This error here is mainly used to communicate any necessary exit Code.
	return exitCode(cmd.ExecuteContext(ctx), stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	// Failed checks were already reported in the summary.
	if e, ok := errors.AsExecutionError(err); ok {
		return e.Code
	}

	fmt.Fprint(stderr, decorate(err))

	if _, ok := errors.AsLaunchError(err); ok {
		return exitCodeLaunchError
	}

	return exitCodeFailure
}

func decorate(err error) string {
	msg := errors.WithDecoration(err).Error()
	if msg == "" || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}

	return msg
}
