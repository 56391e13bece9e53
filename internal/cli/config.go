package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/tasktree/internal/config"
	apperrors "github.com/ariel-frischer/tasktree/internal/errors"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tasktree configuration",
		Long: `Manage tasktree configuration.

Settings are merged from defaults, ~/.tasktree/config.json, the local config
file (--config) and TASKTREE_* environment variables, in that order.`,
	}
	cmd.GroupID = GroupConfiguration

	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var global, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every setting",
		Example: `  # Create tasktree.json in the current directory
  tasktree config init

  # Create the global config
  tasktree config init --global`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if global {
				p, err := config.GlobalConfigPath()
				if err != nil {
					return apperrors.Wrap(err, apperrors.Configuration)
				}
				path = p
			}

			if err := writeConfigTemplate(path, force); err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", green("✓"), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "Write ~/.tasktree/config.json instead of the local file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func writeConfigTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return apperrors.NewArgumentError(
			fmt.Sprintf("config file already exists: %s", path),
			"Pass --force to overwrite it",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "failed to create config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Runtime, "failed to write config file")
	}
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			data, err := yaml.Marshal(s.cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
