package check

import "context"

// Check is the capability every check implements, regardless of how it is backed.
type Check interface {
	Name() string
	Run(ctx context.Context) (Outcome, error)
}

// CommandCheck is a check backed by an external command.
type CommandCheck struct {
	name   string
	spec   CommandSpec
	runner Runner
}

// NewCommandCheck returns a check that runs `spec` using `runner`.
func NewCommandCheck(name string, spec CommandSpec, runner Runner) *CommandCheck {
	return &CommandCheck{name: name, spec: spec, runner: runner}
}

// Name returns the configured name of the check
func (c *CommandCheck) Name() string {
	return c.name
}

// Spec returns the command this check runs
func (c *CommandCheck) Spec() CommandSpec {
	return c.spec
}

// Run runs the underlying command once.
func (c *CommandCheck) Run(ctx context.Context) (Outcome, error) {
	return c.runner.Run(ctx, c.spec)
}
