package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rwx-research/hookcheck/internal/check"
	"github.com/rwx-research/hookcheck/internal/cli"
	"github.com/rwx-research/hookcheck/internal/config"
	"github.com/rwx-research/hookcheck/internal/errors"
	"github.com/rwx-research/hookcheck/internal/exec"
	"github.com/rwx-research/hookcheck/internal/registry"
)

func (a *app) newRunCmd() *cobra.Command {
	var junitPath string

	runCmd := &cobra.Command{
		Use:   "run [hook]",
		Short: "Run the checks of a hook",
		Long:  descriptionRun,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCfg, err := a.runConfig(args)
			if err != nil {
				return err
			}
			runCfg.JUnitPath = junitPath

			// Output is streamed live unless it would be interleaved or the user asked for silence.
			var echo io.Writer
			if !runCfg.Quiet && !runCfg.Parallel {
				echo = a.stdout
				runCfg.Streamed = true
			}

			service, err := a.service(echo)
			if err != nil {
				return err
			}

			return errors.WithStack(service.RunHook(cmd.Context(), runCfg))
		},
	}

	runCmd.Flags().StringVar(&junitPath, "junit", "", "write a JUnit XML report of the run to this file")

	return runCmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [hook]",
		Short: "List the checks of a hook",
		Long:  descriptionList,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runCfg, err := a.runConfig(args)
			if err != nil {
				return err
			}

			service, err := a.service(nil)
			if err != nil {
				return err
			}

			return errors.WithStack(service.ListChecks(runCfg))
		},
	}
}

func (a *app) newInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long:  descriptionInit,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := cli.Service{Log: a.log, FileSystem: a.fileSystem, Stdout: a.stdout}
			return errors.WithStack(service.Init(cli.InitConfig{Dir: a.root, Force: force}))
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")

	return initCmd
}

func (a *app) runConfig(args []string) (cli.RunConfig, error) {
	hook := config.DefaultHook
	if len(args) > 0 {
		hook = args[0]
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return cli.RunConfig{}, err
	}

	runCfg, err := cli.NewRunConfig(cfg, hook)
	if err != nil {
		return runCfg, errors.WithStack(err)
	}
	runCfg.Root = a.root

	return runCfg, nil
}

func (a *app) service(echo io.Writer) (cli.Service, error) {
	reg, err := registry.NewDefault(check.Runner{
		TaskRunner: exec.Local{},
		Log:        a.log,
		Echo:       echo,
	})
	if err != nil {
		return cli.Service{}, errors.WithStack(err)
	}

	return cli.Service{
		Log:        a.log,
		Registry:   reg,
		FileSystem: a.fileSystem,
		Stdout:     a.stdout,
	}, nil
}
