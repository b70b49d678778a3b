package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punch/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login and start tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := app.Tracker.Login(context.Background())
			if err != nil {
				return warnOrFail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("Logged in at:"), formatter.HumanClock(at))
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and stop tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := app.Tracker.Logout(context.Background())
			if err != nil {
				return warnOrFail(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				formatter.StyleGreen.Render("Logged out at:"), formatter.HumanClock(at))
			return nil
		},
	}
}
