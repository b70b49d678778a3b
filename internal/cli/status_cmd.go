package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punch/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's work status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tracker.Status(context.Background())
			if err != nil {
				return warnOrFail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show a 7-day summary of login, break, and productive hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tracker.Report(context.Background())
			if err != nil {
				return warnOrFail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(resp))
			return nil
		},
	}
}
