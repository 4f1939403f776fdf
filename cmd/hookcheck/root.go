package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rwx-research/hookcheck/internal/config"
	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/fs"
	"github.com/rwx-research/hookcheck/internal/logging"
	"github.com/rwx-research/hookcheck/internal/repository"
)

// app holds the state shared between the sub-commands of a single invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	viper  *viper.Viper

	configFilePath string

	fileSystem fs.FileSystem
	log        *zap.SugaredLogger
	// root is the directory checks run in by default: the root of the git worktree or, outside of one, the current
	// working directory.
	root string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout:     stdout,
		stderr:     stderr,
		viper:      viper.New(),
		fileSystem: fs.Local{},
	}

	rootCmd := &cobra.Command{
		Use:               "hookcheck",
		Short:             "hookcheck runs the checks configured for a git hook",
		Long:              descriptionHookcheck,
		Version:           version,
		PersistentPreRunE: a.init,
		SilenceErrors:     true, // Errors are manually printed in 'main'
		SilenceUsage:      true, // Disables usage text on error
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFilePath, "config-file", "", "the config file for hookcheck")
	flags.Bool("debug", false, "enable debug output")
	flags.BoolP("quiet", "q", false, "only print a summary if something went wrong")

	for key, flag := range map[string]string{"output.debug": "debug", "output.quiet": "quiet"} {
		if err := a.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			// The flags are defined right above, so this can only be a programming error.
			panic(err)
		}
	}

	rootCmd.AddCommand(a.newRunCmd(), a.newListCmd(), a.newInitCmd())

	return rootCmd
}

func (a *app) init(_ *cobra.Command, _ []string) error {
	a.log = logging.NewProductionLoggerTo(a.stdout, a.stderr)
	if a.viper.GetBool("output.debug") {
		a.log = logging.NewDebugLoggerTo(a.stdout, a.stderr)
	}

	cwd, err := a.fileSystem.Getwd()
	if err != nil {
		return errors.NewSystemError("unable to determine current working directory: %s", err)
	}

	root, err := repository.Root(cwd)
	if err != nil {
		return errors.WithStack(err)
	}

	if root == "" {
		a.log.Debugf("%q is not within a git repository, using it as the root directory", cwd)
		root = cwd
	}
	a.root = root

	return nil
}

// loadConfig reads the configuration file, either from the `--config-file` flag or by searching upwards from the
// current working directory. Values from the environment & flags are applied on top.
func (a *app) loadConfig() (config.Config, error) {
	path := a.configFilePath

	if path == "" {
		cwd, err := a.fileSystem.Getwd()
		if err != nil {
			return config.Config{}, errors.NewSystemError("unable to determine current working directory: %s", err)
		}

		if path, err = config.Find(cwd); err != nil {
			return config.Config{}, errors.WithStack(err)
		}
	} else if _, err := os.Stat(path); err != nil {
		return config.Config{}, errors.NewDetailedConfigurationError(
			"Unable to read configuration file",
			err.Error(),
			"Please make sure the path passed to '--config-file' exists.",
		)
	}

	if path == "" {
		return config.Config{}, errors.NewDetailedConfigurationError(
			"Missing configuration file",
			"hookcheck was unable to find a .hookcheck/config.yaml in the current directory or any of its parents.",
			"Please run 'hookcheck init' to create one.",
		)
	}

	a.log.Debugf("Using configuration file %q", path)

	cfg, err := config.Load(path, a.viper)
	if err != nil {
		return cfg, errors.WithStack(err)
	}

	if cfg.Output.Debug {
		a.log = logging.NewDebugLoggerTo(a.stdout, a.stderr)
	}

	return cfg, nil
}
