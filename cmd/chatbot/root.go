package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leofalp/chatbot/core/client"
	"github.com/leofalp/chatbot/core/client/middleware"
	"github.com/leofalp/chatbot/core/config"
	"github.com/leofalp/chatbot/internal/logging"
	"github.com/leofalp/chatbot/internal/repl"
	"github.com/leofalp/chatbot/providers/ai/factory"
)

type rootOptions struct {
	provider string
	model    string
	envFiles []string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "chatbot",
		Short:         "Chat with a language model from the terminal",
		Long:          "chatbot reads a line, sends it to the configured provider and prints the reply until you type exit or quit.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.provider, "provider", "", "provider to use: huggingface, openai or ollama (default $DEFAULT_PROVIDER or huggingface)")
	cmd.Flags().StringVar(&opts.model, "model", "", "model name sent with every request (default $DEFAULT_MODEL)")
	cmd.Flags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv file to load, repeatable (default ./.env if present)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: DEBUG, INFO, WARN or ERROR (default $LOG_LEVEL or WARN)")

	return cmd
}

func runChat(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return report(cmd, err)
	}
	if opts.provider != "" {
		cfg.DefaultProvider = opts.provider
	}
	if opts.model != "" {
		cfg.DefaultModel = opts.model
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = config.DefaultLogLevel
	}

	level := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(cmd.ErrOrStderr(), level).With(slog.String("session_id", uuid.New().String()))
	slog.SetDefault(logger)

	provider, err := factory.Create(cfg, cfg.DefaultProvider)
	if err != nil {
		return report(cmd, err)
	}
	logger.Info("provider ready",
		slog.String("provider", cfg.DefaultProvider),
		slog.String("base_url", provider.BaseURL()),
		slog.String("model", cfg.DefaultModel),
	)

	logLevel := middleware.LogLevelStandard
	if level <= slog.LevelDebug {
		logLevel = middleware.LogLevelVerbose
	}
	chat, err := client.New(provider, client.WithMiddleware(middleware.NewLoggingMiddleware(logger, logLevel)))
	if err != nil {
		return report(cmd, err)
	}

	session := repl.New(chat, cfg.DefaultModel, cmd.InOrStdin(), cmd.OutOrStdout(), repl.WithLogger(logger))
	if err := session.Run(cmd.Context()); err != nil {
		return report(cmd, err)
	}
	return nil
}

// report prints err to the command's error stream and returns it unchanged.
// Nothing is printed once the command context is cancelled.
func report(cmd *cobra.Command, err error) error {
	if cmd.Context().Err() != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "chatbot: %v\n", err)
	return err
}
