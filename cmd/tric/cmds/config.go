package cmds

import (
	"fmt"
	"strings"

	"tric/internal/app"

	"github.com/spf13/cobra"
)

func NewConfigCmd(provider AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Show, validate or initialize configuration",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := provider.Config()
			if err != nil {
				return err
			}

			files := "(compose defaults)"
			if len(cfg.ComposeFiles) > 0 {
				files = strings.Join(cfg.ComposeFiles, ", ")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project: %s\n", cfg.Project)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Executor: %s\n", cfg.Executor)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Compose Command: %s\n", strings.Join(cfg.ComposeCommand, " "))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Compose Files: %s\n", files)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Docker Host: %s\n", cfg.DockerHost)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCmd(provider))

	return cmd
}

func newConfigInitCmd(provider AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Create the default configuration file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath := provider.ConfigPath()
			if cfgPath == "" {
				var err error
				cfgPath, err = app.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			createdPath, err := app.InitializeConfig(cfgPath)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", createdPath)
			return nil
		},
	}

	return cmd
}
