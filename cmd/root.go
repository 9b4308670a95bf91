/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE loads configuration lazily via initExtensions.
// Config problems surface before any subcommand runs, with JSON-shaped
// errors when --output json is set so scripted callers always get
// parseable output.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/rgkit/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rgkit",
	Short: "Typed ripgrep searches for LLM workflows",
	Long:  `A ripgrep front-end producing structured, typed results: matched lines with stitched context windows, file listings, and an MCP server for LLM integration.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}

		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command, and
// closes the audit log before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
