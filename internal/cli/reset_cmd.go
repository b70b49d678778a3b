package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punch/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("reset needs confirmation; re-run with --force in non-interactive use")
				}
				confirmed, err := confirmReset()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Aborted."))
					return nil
				}
			}

			if err := app.Tracker.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Cleared all recorded sessions."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

func confirmReset() (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard all recorded sessions?").
				Description("Today's totals go back to zero. This cannot be undone.").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
