package check

// Status is the verdict of a check that ran to completion.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Outcome is the result of one check invocation. It is only produced when the command actually ran; commands that
// could not be launched return an `errors.LaunchError` instead.
type Outcome struct {
	Status Status
	// Output holds everything the command wrote to stdout & stderr, in the order it was written.
	Output string
	// ExitCode is the exit code of the command. It is -1 if the command was terminated by a signal.
	ExitCode int
}

// Passed reports whether the check succeeded.
func (o Outcome) Passed() bool {
	return o.Status == StatusPass
}
