package cmds

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	// DefaultShellService is the service opened when none is named.
	DefaultShellService = "codeception"
	shellBinary         = "bash"
)

var shellExamples = []string{"wordpress", "chrome", "db"}

// NewShellCmd creates the shell command. It opens bash in a service that is
// already running; a stopped service makes the command fail, it is never started.
func NewShellCmd(provider AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shell [<service>]",
		Short:        "Open a bash shell in a running stack service",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			executor, err := provider.Executor()
			if err != nil {
				return err
			}

			return executor.Realtime(cmd.Context(), ShellArgs(ResolveService(args)))
		},
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		writeShellHelp(out, NewStyles(out), c.Root().Name())
	})

	return cmd
}

// ResolveService returns the first token, or DefaultShellService when there is
// none. An empty token is kept as given.
func ResolveService(args []string) string {
	if len(args) == 0 {
		return DefaultShellService
	}
	return args[0]
}

// ShellArgs is the stack command that opens the shell in service.
func ShellArgs(service string) []string {
	return []string{"exec", service, shellBinary}
}

func writeShellHelp(w io.Writer, styles Styles, cliName string) {
	_, _ = fmt.Fprintf(w, "Opens a bash shell in a running stack service, defaults to the '%s' one.\n", DefaultShellService)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "usage: %s\n", styles.Command.Render(cliName+" shell [<service>]"))
	for _, service := range shellExamples {
		_, _ = fmt.Fprintf(w, "example: %s\n", styles.Command.Render(cliName+" shell "+service))
	}
}
