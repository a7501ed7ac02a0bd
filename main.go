package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"worktime/cli"
	"worktime/config"
	"worktime/storage"
	"worktime/tui"
)

// newLogger logs warnings to stderr, or everything in development form when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	store := storage.New(cfg.Folder, cfg.File, logger)
	logger.Debug("using log file", zap.String("path", store.Path()))

	// Handle TUI separately to avoid importing tui in cli package
	if len(args) > 0 && args[0] == "tui" {
		return tui.LaunchTUI(cfg, store, logger)
	}

	app := cli.New(cfg, store, logger)
	if len(args) == 0 {
		return app.Interactive(os.Stdin)
	}
	if err := app.Run(args); err != nil && !errors.Is(err, cli.ErrExit) {
		return err
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
