package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/punch/internal/cli/formatter"
	"github.com/alexanderramin/punch/internal/domain"
	"github.com/spf13/cobra"
)

func newBreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Manage breaks within the current session",
	}

	cmd.AddCommand(
		newBreakStartCmd(app),
		newBreakEndCmd(app),
	)

	return cmd
}

func newBreakStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a break",
		Args:  cobra.NoArgs,
		RunE:  runBreakStart(app),
	}
}

func newBreakEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current break",
		Args:  cobra.NoArgs,
		RunE:  runBreakEnd(app),
	}
}

// Top-level break-start/break-end are kept for muscle-memory
// compatibility with the flat command surface; hidden from help.
func newBreakStartAlias(app *App) *cobra.Command {
	return &cobra.Command{
		Use:    "break-start",
		Short:  "Start a break",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE:   runBreakStart(app),
	}
}

func newBreakEndAlias(app *App) *cobra.Command {
	return &cobra.Command{
		Use:    "break-end",
		Short:  "End the current break",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE:   runBreakEnd(app),
	}
}

func runBreakStart(app *App) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		at, err := app.Tracker.StartBreak(context.Background())
		if err != nil {
			return breakWarnOrFail(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			formatter.StyleBlue.Render("Break started at:"), formatter.HumanClock(at))
		return nil
	}
}

func runBreakEnd(app *App) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		at, err := app.Tracker.EndBreak(context.Background())
		if err != nil {
			return breakWarnOrFail(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			formatter.StyleGreen.Render("Break ended at:"), formatter.HumanClock(at))
		return nil
	}
}

// breakWarnOrFail renders being logged out more pointedly for break
// commands, since the fix is to login, not to end a break.
func breakWarnOrFail(cmd *cobra.Command, err error) error {
	if errors.Is(err, domain.ErrNotLoggedIn) {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleRed.Render("You need to login first."))
		return nil
	}
	return warnOrFail(cmd, err)
}
