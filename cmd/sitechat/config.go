package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/sitechat/internal/config"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a configuration file template",
		Long: `Print a YAML configuration file holding the default settings.

Nothing is written to disk. Redirect the output to create a file:

  sitechat config > .sitechat

sitechat looks for its configuration in ./.sitechat, ~/.sitechat and
the XDG config directory, or at the path given with --config.`,
		Args: cobra.NoArgs,
		RunE: runConfigCmd,
	}
}

// runConfigCmd executes the config command.
func runConfigCmd(cmd *cobra.Command, _ []string) error {
	content, err := config.Template()
	if err != nil {
		return fmt.Errorf("failed to render config template: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(content)
	return err
}
