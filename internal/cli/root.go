// tasktree - Live task trees for the terminal
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/tasktree

// Package cli provides the Cobra-based commands for tasktree: an animated
// demo, static or live rendering of YAML plans, theme inspection,
// configuration scaffolding and version information.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/tasktree/internal/cli/shared"
	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupTrees         = shared.GroupTrees
	GroupConfiguration = shared.GroupConfiguration
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tasktree",
		Short: "Live task trees for the terminal",
		Long: `Live task trees for the terminal

Draws a tree of tasks with spinners, status symbols, log lines and progress
bars, redrawing it in place until the work is done.

Source: https://github.com/ariel-frischer/tasktree`,
		Example: `  # Watch an animated example tree
  tasktree demo

  # Render a plan file once
  tasktree render plan.yaml

  # Replay a plan live, one task every 200ms
  tasktree render plan.yaml --live --step 200ms

  # Show theme colors and symbols
  tasktree theme`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: GroupTrees, Title: "Trees:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "tasktree.json", "Path to local config file")
	rootCmd.PersistentFlags().Bool("ascii", false, "Use ASCII symbols and spinner frames")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors")
	rootCmd.PersistentFlags().String("log-file", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(
		newDemoCmd(),
		newRenderCmd(),
		newThemeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. Errors other than bare exit codes are
// printed to stderr before being returned.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !shared.IsExitError(err) {
		apperrors.PrintError(err)
	}
	return err
}
