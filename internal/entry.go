// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/ansuz/internal/apply"
	"github.com/starford/ansuz/internal/checksum"
	"github.com/starford/ansuz/internal/registry"
	"github.com/starford/ansuz/internal/storage"
)

// Run executes the full front matter pass with the given options: the
// parent-page creation pass followed by the leaf-page annotation pass.
func Run(_ context.Context, opts ...Option) error {
	app, logger, store, err := setup(opts)
	if err != nil {
		return err
	}

	applicator := apply.New(store, logger, app.dryRun)
	report, err := applicator.Run(registry.ParentPages(), registry.LeafPages())
	if err != nil {
		return fmt.Errorf("apply pass: %w", err)
	}

	logger.Info("pass complete",
		slog.Int("created", report.Created),
		slog.Int("added", report.Added),
		slog.Int("skipped", report.Skipped),
		slog.Int("missing", report.Missing),
		slog.Bool("dry_run", app.dryRun))
	return nil
}

// Status walks the docs root and logs the front matter state of every page.
func Status(_ context.Context, opts ...Option) error {
	_, logger, store, err := setup(opts)
	if err != nil {
		return err
	}

	statuses, err := apply.Scan(store)
	if err != nil {
		return fmt.Errorf("scan docs: %w", err)
	}

	for _, s := range statuses {
		logger.Info("page",
			slog.String("path", s.Path),
			slog.String("title", s.Title),
			slog.Bool("front_matter", s.HasFrontMatter),
			slog.String("checksum", checksum.Short(s.Checksum)))
	}
	logger.Info("status complete", slog.Int("pages", len(statuses)))
	return nil
}

func setup(opts []Option) (*application, *slog.Logger, storage.Provider, error) {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, nil, nil, fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("docs_root", cfg.Docs.Root),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure the docs root exists.
	if err := os.MkdirAll(cfg.Docs.Root, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("create docs root: %w", err)
	}

	store, err := storage.NewFS(cfg.Docs.Root)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("init storage: %w", err)
	}

	return app, logger, store, nil
}
