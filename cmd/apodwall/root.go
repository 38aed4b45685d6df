// Package main provides the entry point for the apodwall CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for apodwall.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apodwall",
		Short: "Set NASA's Astronomy Picture of the Day as the desktop background",
		Long: `apodwall fetches NASA's Astronomy Picture of the Day page, downloads
today's image, and applies it as the desktop background.

It is designed to run unattended from a scheduler: one attempt per stage,
exit code 1 at the first failure, and all diagnostics in the log stream.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug-level) console logging")

	// Add subcommands
	cmd.AddCommand(NewSetCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
