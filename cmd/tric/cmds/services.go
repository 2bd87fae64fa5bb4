package cmds

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"tric/internal/stack"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewServicesCmd creates the services command listing the stack containers.
func NewServicesCmd(provider AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "services",
		Short:        "List stack services and their state",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := provider.Config()
			if err != nil {
				return err
			}

			lister, err := provider.ServiceLister()
			if err != nil {
				return err
			}
			if closer, ok := lister.(io.Closer); ok {
				defer func() {
					_ = closer.Close()
				}()
			}

			services, err := lister.Services(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(services) == 0 {
				_, _ = fmt.Fprintf(out, "No services found for project %s\n", cfg.Project)
				return nil
			}

			return writeServices(out, NewStyles(out), services)
		},
	}

	return cmd
}

// writeServices prints the services table. STATE is padded to its visible
// width outside tabwriter, which would count color escapes as text.
func writeServices(out io.Writer, styles Styles, services []stack.Service) error {
	stateWidth := lipgloss.Width("STATE")
	for _, s := range services {
		stateWidth = max(stateWidth, lipgloss.Width(s.State))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "SERVICE\tCONTAINER\tIMAGE\t%s  STATUS\n", pad("STATE", stateWidth))
	for _, s := range services {
		style := styles.Stopped
		if s.Running() {
			style = styles.Running
		}
		state := style.Render(s.State) + strings.Repeat(" ", stateWidth-lipgloss.Width(s.State))
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s  %s\n", s.Name, s.Container, s.Image, state, s.Status)
	}

	return w.Flush()
}

func pad(text string, width int) string {
	return text + strings.Repeat(" ", width-lipgloss.Width(text))
}
