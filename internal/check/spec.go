package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/rwx-research/hookcheck/internal/errors"
)

// CommandSpec describes the external command a check runs.
type CommandSpec struct {
	Name string
	Args []string
	// WorkingDirectory overrides the working directory of the command. Empty means inherited.
	WorkingDirectory string
	// Environment holds variables that are set in addition to (or instead of) the inherited environment.
	Environment map[string]string
}

// ParseCommandSpec splits a shell-like command line into a CommandSpec. Quoting and escaping are honored, but shell
// operators such as pipes or `&&` are not interpreted; use `sh -c '...'` for those.
func ParseCommandSpec(line string) (CommandSpec, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return CommandSpec{}, errors.NewConfigurationError("unable to parse command %q: %s", line, err)
	}

	if len(words) == 0 {
		return CommandSpec{}, errors.NewConfigurationError("command %q is empty", line)
	}

	return CommandSpec{Name: words[0], Args: words[1:]}, nil
}

// String returns a human-readable representation of the command line
func (s CommandSpec) String() string {
	return strings.Join(append([]string{s.Name}, s.Args...), " ")
}

func (s CommandSpec) environ() []string {
	if len(s.Environment) == 0 {
		return nil
	}

	env := make([]string, 0, len(s.Environment))
	for name, value := range s.Environment {
		env = append(env, fmt.Sprintf("%s=%s", name, value))
	}
	sort.Strings(env)

	return env
}
