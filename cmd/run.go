package cmd

import (
	"fmt"
	"io"
	"log"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/fraudlens/internal/app"
	"github.com/abhisek/fraudlens/internal/predict"
)

// runApp builds the prediction client and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := predict.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("create prediction client: %w", err)
	}

	logger, closeLog, err := openLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Printf("starting base_url=%s timeout=%s prefix=%s", cfg.BaseURL, cfg.Timeout, cfg.FeaturePrefix)

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Predictor:     predict.WithLogging(client, logger),
		FeaturePrefix: cfg.FeaturePrefix,
		Health:        client,
		SkipSplash:    noSplash,
	})
}

// openLogger returns a logger writing to --log-file, or one that discards
// everything so the alt screen stays clean.
func openLogger(cmd *cobra.Command) (*log.Logger, func(), error) {
	logger := log.New(io.Discard, "", log.LstdFlags)

	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return logger, func() {}, nil
	}

	f, err := tea.LogToFileWith(path, "fraudlens", logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger, func() { _ = f.Close() }, nil
}
