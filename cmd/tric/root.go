package main

import (
	"tric/cmd/tric/cmds"
	"tric/internal/stack"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	configPath string
	debug      bool
}

// Execute runs the root command against the process terminal.
func Execute() error {
	application := newApplication(&cliOptions{}, stackExecutorFactory, dockerListerFactory, stack.StdStreams())
	defer func() {
		_ = application.Close()
	}()

	return newRootCmd(application).Execute()
}

func newRootCmd(application *Application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tric",
		Short:         "Manage the containerized testing stack",
		Long:          `A CLI tool to work with the services of a docker compose testing stack.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&application.opts.configPath, "config", "", "Path to config file (defaults to ~/.config/tric/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&application.opts.debug, "debug", false, "Log stack commands before running them")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		application.setDebug(application.opts.debug)
		if shouldSkipAppInit(cmd) {
			return nil
		}

		_, err := application.Config()
		return err
	}

	rootCmd.AddCommand(
		cmds.NewConfigCmd(application),
		cmds.NewShellCmd(application),
		cmds.NewServicesCmd(application),
	)

	return rootCmd
}

func shouldSkipAppInit(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	if cmd.Name() == "init" && cmd.HasParent() && cmd.Parent().Name() == "config" {
		return true
	}

	if cmd.Name() == "help" && cmd.HasParent() && !cmd.Parent().HasParent() {
		return true
	}

	return false
}
