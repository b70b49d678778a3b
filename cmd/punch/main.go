package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/punch/internal/cli"
	"github.com/alexanderramin/punch/internal/service"
	"github.com/alexanderramin/punch/internal/store"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine data path: env var or default ~/.punch/punch.json
	dataPath := os.Getenv("PUNCH_DATA")
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataPath = filepath.Join(home, ".punch", "punch.json")
	}

	app := &cli.App{
		Tracker: service.NewTrackerService(store.NewFileStore(dataPath), clock.New()),
	}

	// Detect interactive terminal for the watch view and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
