package cli

import (
	"github.com/rwx-research/hookcheck/internal/config"
	"github.com/rwx-research/hookcheck/internal/errors"
)

// RunConfig holds the configuration for running the checks of a hook (used by `RunHook` & `ListChecks`)
type RunConfig struct {
	Hook        string
	Checks      []config.Check
	Parallel    bool
	MaxParallel int
	FailFast    bool
	// Root is the directory checks run in unless they configure their own working directory.
	Root string
	// Streamed indicates that check output was already echoed to the terminal while the checks were running.
	Streamed  bool
	Quiet     bool
	JUnitPath string
}

// NewRunConfig builds a RunConfig for the named hook of a configuration file
func NewRunConfig(cfg config.Config, hook string) (RunConfig, error) {
	hookCfg, ok := cfg.Hooks[hook]
	if !ok {
		return RunConfig{}, errors.NewInputError("hook %q is not configured", hook)
	}

	return RunConfig{
		Hook:        hook,
		Checks:      hookCfg.Checks,
		Parallel:    hookCfg.Parallel,
		MaxParallel: hookCfg.MaxParallel,
		FailFast:    hookCfg.FailFast,
		Quiet:       cfg.Output.Quiet,
	}, nil
}

// Validate checks the RunConfig for mistakes
func (rc RunConfig) Validate() error {
	if rc.Hook == "" {
		return errors.NewInputError("no hook name was provided")
	}

	if rc.MaxParallel < 0 {
		return errors.NewConfigurationError("max-parallel must be >= 0")
	}

	if rc.Parallel && rc.FailFast {
		return errors.NewConfigurationError("hook %q: fail-fast is only supported for sequential hooks", rc.Hook)
	}

	return nil
}

// InitConfig holds the configuration for `Init`
type InitConfig struct {
	// Dir is the directory the `.hookcheck` directory is created in.
	Dir   string
	Force bool
}
