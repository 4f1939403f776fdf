// Package config holds the configuration file model of hookcheck and knows how to find, read & validate it.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/registry"
)

const (
	Directory = ".hookcheck"
	fileName  = "config"

	// EnvPrefix is the prefix of environment variables that override configuration values, e.g.
	// `HOOKCHECK_OUTPUT_DEBUG`.
	EnvPrefix = "HOOKCHECK"

	DefaultHook = "pre-push"
)

// FileExtensions are the extensions a configuration file may have, in order of preference.
var FileExtensions = []string{"yaml", "yml"}

// Config is the root of the configuration file
type Config struct {
	Output Output          `yaml:"output"`
	Hooks  map[string]Hook `yaml:"hooks"`
}

// Output configures what is printed to the terminal
type Output struct {
	Debug bool `yaml:"debug"`
	Quiet bool `yaml:"quiet"`
}

// Hook lists the checks that make up a hook
type Hook struct {
	Parallel    bool    `yaml:"parallel,omitempty"`
	MaxParallel int     `yaml:"max-parallel,omitempty"`
	FailFast    bool    `yaml:"fail-fast,omitempty"`
	Checks      []Check `yaml:"checks"`
}

// Check is the configuration of a single check
type Check struct {
	Name             string            `yaml:"name"`
	Kind             string            `yaml:"kind,omitempty"`
	Command          string            `yaml:"command,omitempty"`
	WorkingDirectory string            `yaml:"working-directory,omitempty"`
	Environment      map[string]string `yaml:"environment,omitempty"`
	Timeout          time.Duration     `yaml:"timeout,omitempty"`
}

// Definition converts the check configuration into a registry definition. Relative working directories are resolved
// against `root`.
func (c Check) Definition(root string) registry.Definition {
	dir := c.WorkingDirectory
	if dir == "" {
		dir = root
	} else if !filepath.IsAbs(dir) && root != "" {
		dir = filepath.Join(root, dir)
	}

	kind := c.Kind
	if kind == "" {
		kind = registry.KindCommand
	}

	return registry.Definition{
		Name:             c.Name,
		Kind:             kind,
		Command:          c.Command,
		WorkingDirectory: dir,
		Environment:      c.Environment,
		Timeout:          c.Timeout,
	}
}

// Validate checks the configuration for mistakes that can be detected without running anything
func (c Config) Validate() error {
	for hookName, hook := range c.Hooks {
		if hook.MaxParallel < 0 {
			return errors.NewConfigurationError("hook %q: max-parallel must not be negative", hookName)
		}

		seen := make(map[string]struct{}, len(hook.Checks))
		for i, check := range hook.Checks {
			if check.Name == "" {
				return errors.NewConfigurationError("hook %q: check #%d is missing a name", hookName, i+1)
			}

			if _, ok := seen[check.Name]; ok {
				return errors.NewConfigurationError("hook %q: check %q is defined more than once", hookName, check.Name)
			}
			seen[check.Name] = struct{}{}

			if check.Timeout < 0 {
				return errors.NewConfigurationError("hook %q: check %q has a negative timeout", hookName, check.Name)
			}
		}
	}

	return nil
}

// Find starts at `dir` and walks up to the root of the file-system, looking for a configuration file. It returns an
// empty path if none was found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WithStack(err)
	}

	for {
		matches := make([]string, 0, len(FileExtensions))

		for _, extension := range FileExtensions {
			candidate := Path(dir, extension)

			info, err := os.Stat(candidate)
			if err != nil && !notExist(err) {
				return "", errors.NewDetailedConfigurationError(
					"Unable to read configuration file",
					fmt.Sprintf("The following system error occurred while looking for %q: %s", candidate, err),
					"Please make sure that hookcheck has the correct permissions to access the config file.",
				)
			}

			if info != nil && !info.IsDir() {
				matches = append(matches, candidate)
			}
		}

		if len(matches) > 1 {
			return "", errors.NewDetailedConfigurationError(
				"Unable to identify configuration file",
				fmt.Sprintf("hookcheck found multiple configuration files: %s", strings.Join(matches, ", ")),
				"Please make sure only one config file is present or explicitly specify one using the "+
					"'--config-file' flag.",
			)
		}

		if len(matches) == 1 {
			return matches[0], nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// notExist reports whether `err` means there is nothing at a path. ENOTDIR shows up when a path component, such as
// the config directory, is a regular file.
func notExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// Path returns the path of the configuration file with the given extension inside `dir`.
func Path(dir, extension string) string {
	return filepath.Join(dir, Directory, fmt.Sprintf("%s.%s", fileName, extension))
}

// Load reads the configuration file at `path` and applies overrides from `v`, which is expected to have cobra flags
// bound to it. An empty path yields the defaults.
// Environment variables take precedence over the config file. Flags take precedence over all other options.
func Load(path string, v *viper.Viper) (Config, error) {
	var cfg Config

	if path != "" {
		fd, err := os.Open(path)
		if err != nil {
			return cfg, errors.NewDetailedConfigurationError(
				"Unable to read configuration file",
				fmt.Sprintf("The following system error occurred while opening %q: %s", path, err),
				"Please make sure that hookcheck has the correct permissions to access the config file.",
			)
		}
		defer fd.Close()

		if cfg, err = Decode(fd); err != nil {
			return cfg, errors.Wrapf(err, "unable to parse config file %q", path)
		}
	}

	if v != nil {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()

		v.SetDefault("output.debug", cfg.Output.Debug)
		v.SetDefault("output.quiet", cfg.Output.Quiet)

		cfg.Output.Debug = v.GetBool("output.debug")
		cfg.Output.Quiet = v.GetBool("output.quiet")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithStack(err)
	}

	return cfg, nil
}

// Decode parses a configuration file. Unknown fields are rejected.
func Decode(r io.Reader) (Config, error) {
	var cfg Config

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}

		typeError := new(yaml.TypeError)
		if errors.As(err, &typeError) {
			return Config{}, errors.NewDetailedConfigurationError(
				"Parsing Error",
				strings.Join(typeError.Errors, "\n"),
				"Please refer to `hookcheck init` for an example of the config file syntax.",
			)
		}

		return Config{}, errors.NewConfigurationError("%s", err)
	}

	return cfg, nil
}

// Starter returns the configuration written by `hookcheck init`. It mirrors the behavior of a classic pre-push hook:
// run the test-suite before every push.
func Starter() Config {
	return Config{
		Hooks: map[string]Hook{
			DefaultHook: {
				Checks: []Check{
					{Name: "tests", Kind: registry.KindTest, Command: registry.DefaultTestCommand},
				},
			},
		},
	}
}

// Encode writes `cfg` as YAML.
func Encode(w io.Writer, cfg Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(cfg); err != nil {
		return errors.NewSystemError("unable to write configuration: %s", err)
	}

	if err := encoder.Close(); err != nil {
		return errors.NewSystemError("unable to write configuration: %s", err)
	}

	return nil
}
