package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// LaunchReason categorizes why a command could not be launched.
type LaunchReason string

const (
	ReasonInvalidCommand   LaunchReason = "invalid-command"
	ReasonNotFound         LaunchReason = "not-found"
	ReasonPermissionDenied LaunchReason = "permission-denied"
	ReasonInvalidDirectory LaunchReason = "invalid-directory"
	ReasonTimeout          LaunchReason = "timeout"
	ReasonCanceled         LaunchReason = "canceled"
	ReasonUnknown          LaunchReason = "unknown"
)

// LaunchError is returned when a check could not be run at all. This is distinct from an ExecutionError: the command
// never produced a verdict, either because it could not be started or because it was stopped before it finished.
type LaunchError struct {
	E       error
	Command string
	Reason  LaunchReason
}

// NewLaunchError returns a new LaunchError
func NewLaunchError(reason LaunchReason, command string, msg string, a ...any) LaunchError {
	return LaunchError{E: errors.Errorf(msg, a...), Command: command, Reason: reason}
}

// AsLaunchError checks whether the error is a launch error
func AsLaunchError(err error) (LaunchError, bool) {
	var e LaunchError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e LaunchError) Error() string {
	return e.E.Error()
}

func (e LaunchError) Unwrap() error { return e.E }

// Type returns a human-readable category of the error
func (e LaunchError) Type() string { return "Launch Error" }

// Description explains what went wrong in terms of the launched command
func (e LaunchError) Description() string {
	switch e.Reason {
	case ReasonInvalidCommand:
		return "The check does not specify a command to run."
	case ReasonNotFound:
		return fmt.Sprintf("The executable for %q could not be found.", e.Command)
	case ReasonPermissionDenied:
		return fmt.Sprintf("The executable for %q is not executable by the current user.", e.Command)
	case ReasonInvalidDirectory:
		return fmt.Sprintf("The working directory configured for %q does not exist or is not a directory.", e.Command)
	case ReasonTimeout:
		return fmt.Sprintf("%q did not finish before its timeout expired and was stopped.", e.Command)
	case ReasonCanceled:
		return fmt.Sprintf("%q was interrupted before it finished.", e.Command)
	default:
		return fmt.Sprintf("%q could not be started.", e.Command)
	}
}

// Resolution suggests a fix for the error
func (e LaunchError) Resolution() string {
	switch e.Reason {
	case ReasonInvalidCommand:
		return "Set 'command' on the check in your configuration file."
	case ReasonNotFound:
		return "Make sure the executable is installed and available on your PATH."
	case ReasonPermissionDenied:
		return "Make sure the file has its executable bit set."
	case ReasonInvalidDirectory:
		return "Check the 'working-directory' setting of the check."
	case ReasonTimeout:
		return "Increase the 'timeout' setting of the check or make the command faster."
	default:
		return ""
	}
}
