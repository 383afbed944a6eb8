package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/sitechat/internal/config"
)

// NewRootCmd creates the root command for sitechat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitechat",
		Short: "Ask questions about a web page",
		Long: `sitechat fetches a web page, extracts its headings and paragraphs,
and answers your questions about it using the Gemini API.

The API key is read from the ` + config.APIKeyEnv + ` environment variable.
A .env file in the current directory is loaded first if present.

At the URL prompt, enter a website address (https:// is added when
missing). At the question prompt, type a question about the page.

Commands (case-insensitive):
  x    exit
  e    clear the screen
  new  analyze a different website

Examples:
  # Start an interactive session
  sitechat

  # Print answers as Markdown
  sitechat --markdown

  # Fetch pages through a local Tor daemon
  sitechat --proxy socks5://127.0.0.1:9050`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runChatCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .sitechat in current or home directory)")

	cmd.Flags().String("env-file", "",
		"Load environment variables from this file (default: .env if present)")
	cmd.Flags().String("model", "", "Gemini model name (default: "+config.DefaultModel+")")
	cmd.Flags().String("proxy", "",
		"Fetch pages through a proxy (socks5://host:port or http://host:port)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print answers as Markdown (same as --output markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Answer format: text, markdown or json")

	cmd.Flags().Bool("pretty-json", false,
		"Indent answers printed with --output json")

	cmd.MarkFlagsMutuallyExclusive("markdown", "output")
	cmd.MarkFlagsMutuallyExclusive("markdown", "pretty-json")

	// Add subcommands
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
