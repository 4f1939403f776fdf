package exec

import (
	"io"
	"time"
)

// CommandConfig configures a command for execution
type CommandConfig struct {
	Args []string
	// Dir is the working directory of the command. An empty value inherits the working directory of the caller.
	Dir string
	// Env holds additional `KEY=value` pairs. They are appended to the inherited environment.
	Env    []string
	Name   string
	Stderr io.Writer
	Stdout io.Writer
	// WaitDelay bounds how long `Wait` keeps waiting for I/O after the process exited or was killed.
	WaitDelay time.Duration
}
