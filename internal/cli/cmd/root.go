// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
)

var (
	app       *cli.App
	buildInfo cli.BuildInfo
	rootCmd   = &cobra.Command{
		Use:   "dockyard",
		Short: "Docking window layout manager",
		Long: `Dockyard - a docking layout core for frameless multi-window applications.

Panels dock into a main window, minimize to side bars on any of the four
edges, and pop back out as overlays. Window layouts serialize to JSON and
can be saved under a name for later restoration.

Explore the subcommands to inspect and manage saved layouts.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info cli.BuildInfo) {
	buildInfo = info
}
