package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live view of today's totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}
			p := tea.NewProgram(newWatchModel(app.Tracker), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
