package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/sitechat/internal/answer"
	"github.com/nao1215/sitechat/internal/config"
	"github.com/nao1215/sitechat/internal/console"
	"github.com/nao1215/sitechat/internal/extract"
	"github.com/nao1215/sitechat/internal/fetch"
	"github.com/nao1215/sitechat/internal/gemini"
	"github.com/nao1215/sitechat/internal/log"
	"github.com/nao1215/sitechat/internal/pipeline"
	"github.com/nao1215/sitechat/internal/report"
	"github.com/nao1215/sitechat/internal/session"
)

// runChatCmd executes the interactive chat.
func runChatCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg.Verbose)
	slog.SetDefault(logger)

	// SIGTERM ends the session; SIGINT is handled by the console.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	c, err := newConsole(cmd, cfg, logger, interrupts)
	if err != nil {
		return err
	}

	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newLogger creates the credential-masking logger selected by the flags.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	jsonLogs, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		jsonLogs, _ = cmd.Root().PersistentFlags().GetBool("log-json")
	}
	if jsonLogs {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the .env and configuration
// files and the command flags, in that order, and validates it.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.EnvFile, err = cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}

	if err := config.LoadEnvFile(cfg.EnvFile); err != nil {
		return nil, err
	}
	if _, err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	if cmd.Flags().Changed("model") {
		if cfg.Model, err = cmd.Flags().GetString("model"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("proxy") {
		if cfg.Proxy, err = cmd.Flags().GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.OutputFormat, err = cmd.Flags().GetString("output"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("pretty-json") {
		if cfg.PrettyJSON, err = cmd.Flags().GetBool("pretty-json"); err != nil {
			return nil, err
		}
	}
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if markdown {
		cfg.OutputFormat = config.OutputMarkdown
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// newConsole wires the Gemini client, the scrape pipeline, the session and
// the answer writer into a console reading the command's input.
func newConsole(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, interrupts <-chan os.Signal) (*console.Console, error) {
	client, err := gemini.New(config.APIKey(),
		gemini.WithBaseURL(cfg.APIBaseURL),
		gemini.WithModel(cfg.Model),
		gemini.WithGenerationConfig(gemini.GenerationConfig{
			Temperature: cfg.Temperature,
			TopP:        cfg.TopP,
			TopK:        cfg.TopK,
		}),
		gemini.WithTimeout(cfg.GenerationTimeout),
		gemini.WithLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to initialize Gemini API", "error", err)
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			return nil, fmt.Errorf("failed to initialize Gemini API: %w (set %s)", err, config.APIKeyEnv)
		}
		return nil, fmt.Errorf("failed to initialize Gemini API: %w", err)
	}

	fetcher, err := fetch.New(
		fetch.WithTimeout(cfg.FetchTimeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithProxy(cfg.Proxy),
		fetch.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	scraper := pipeline.NewScrapePipeline(
		fetcher,
		extract.New(extract.WithMinBlockLength(cfg.MinBlockLength)),
		logger,
	)
	answerer := answer.New(client,
		answer.WithRetryPolicy(answer.RetryPolicy{
			MaxAttempts: cfg.MaxAttempts,
			Delay:       cfg.RetryDelay,
		}),
		answer.WithMaxContentChars(cfg.MaxContentChars),
		answer.WithLogger(logger),
	)
	sess := session.New(scraper, answerer, session.WithLogger(logger))

	out := cmd.OutOrStdout()
	var jsonOpts []report.JSONWriterOption
	if cfg.PrettyJSON {
		jsonOpts = append(jsonOpts, report.WithPrettyPrint())
	}
	writer, err := report.NewWriter(cfg.OutputFormat, out, jsonOpts...)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	fmt.Fprintln(out, "Successfully initialized Gemini API")
	logger.Debug("session ready",
		"model", client.Model(),
		"proxy", cfg.Proxy,
		"steps", scraper.StepNames(),
		"output", cfg.OutputFormat,
	)

	return console.New(cmd.InOrStdin(), out, sess,
		console.WithWriter(writer),
		console.WithInterrupts(interrupts),
		console.WithLogger(logger),
	), nil
}
