package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/punch/internal/cli/formatter"
	"github.com/alexanderramin/punch/internal/domain"
	"github.com/alexanderramin/punch/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Tracker service.TrackerService

	// IsInteractive reports whether stdout is a terminal. Commands that
	// need a live screen or a prompt refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "punch" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "punch",
		Short:         "Track login, logout, and break times",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newBreakCmd(app),
		newBreakStartAlias(app),
		newBreakEndAlias(app),
		newStatusCmd(app),
		newReportCmd(app),
		newResetCmd(app),
		newWatchCmd(app),
	)

	return root
}

// warningFor maps expected domain-rule violations to their one-line
// warning text. Anything else is a real failure.
func warningFor(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrAlreadyLoggedIn):
		return "Already logged in!", true
	case errors.Is(err, domain.ErrNotLoggedIn):
		return "You are not logged in.", true
	case errors.Is(err, domain.ErrBreakInProgress):
		return "Break already in progress!", true
	case errors.Is(err, domain.ErrNoActiveBreak):
		return "No active break found.", true
	case errors.Is(err, domain.ErrNoActivity):
		return "No activity recorded yet.", true
	}
	return "", false
}

// warnOrFail prints a warning and swallows the error for domain-rule
// violations; the process still exits zero. Store errors propagate.
func warnOrFail(cmd *cobra.Command, err error) error {
	if msg, ok := warningFor(err); ok {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn(msg))
		return nil
	}
	return err
}
