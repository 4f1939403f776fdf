package registry

import (
	"github.com/rwx-research/hookcheck/internal/check"
	"github.com/rwx-research/hookcheck/internal/errors"
)

const (
	KindCommand = "command"
	KindTest    = "test"

	// DefaultTestCommand is what the `test` kind runs unless a command is configured.
	DefaultTestCommand = "make test"
)

// NewDefault returns a registry with the built-in kinds. Every check it builds runs through `runner`.
func NewDefault(runner check.Runner) (*Registry, error) {
	r := New()

	if err := r.Register(KindCommand, CommandFactory(runner)); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := r.Register(KindTest, TestFactory(runner)); err != nil {
		return nil, errors.WithStack(err)
	}

	return r, nil
}

// CommandFactory builds checks that run an arbitrary, required command.
func CommandFactory(runner check.Runner) Factory {
	return func(def Definition) (check.Check, error) {
		if def.Command == "" {
			return nil, errors.NewConfigurationError("check %q of kind %q requires a command", def.Name, KindCommand)
		}

		return newCommandCheck(def, def.Command, runner)
	}
}

// TestFactory builds checks that run the project's test-suite. Without a configured command they fall back to
// DefaultTestCommand.
func TestFactory(runner check.Runner) Factory {
	return func(def Definition) (check.Check, error) {
		command := def.Command
		if command == "" {
			command = DefaultTestCommand
		}

		return newCommandCheck(def, command, runner)
	}
}

func newCommandCheck(def Definition, command string, runner check.Runner) (check.Check, error) {
	spec, err := check.ParseCommandSpec(command)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	spec.WorkingDirectory = def.WorkingDirectory
	spec.Environment = def.Environment

	if def.Timeout < 0 {
		return nil, errors.NewConfigurationError("check %q has a negative timeout", def.Name)
	}
	runner.Timeout = def.Timeout

	return check.NewCommandCheck(def.Name, spec, runner), nil
}
