// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/wrenfield/docdex/internal/index"
	"github.com/wrenfield/docdex/internal/storage"
)

// Run executes one index build, or a watch loop, according to the options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	root := app.root
	if root == "" {
		root = DefaultRoot()
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve root: %w", err)
	}

	logger.Info("Configuration loaded",
		slog.String("root", root),
		slog.String("output", cfg.Index.Output),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	builder := index.NewBuilder(store, index.Config{
		Collections:  cfg.Index.Collections,
		Output:       cfg.Index.Output,
		RegenCommand: cfg.Index.RegenCommand,
	}, logger)

	if app.watch {
		return runWatch(ctx, builder, root, cfg, logger)
	}

	s, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d tags)\n", filepath.Join(root, s.Output), s.TagCount)
	return nil
}

// runWatch runs the rebuild-on-change loop until a signal or ctx ends it.
func runWatch(ctx context.Context, b *index.Builder, root string, cfg *Config, logger *slog.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)
	watchCtx, cancel := context.WithCancel(gCtx)

	g.Go(func() error {
		defer cancel()
		return index.Watch(watchCtx, b, root, cfg.Watch.Debounce, logger)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-watchCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watch stopped successfully")
	return nil
}

// newLogger builds the process logger. Logs go to stderr so stdout stays
// reserved for the success message.
func newLogger(cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// DefaultRoot resolves the repository root for a bare invocation. A binary
// installed at <root>/scripts/docdex indexes the repository containing it;
// anything else indexes the current working directory.
func DefaultRoot() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if filepath.Base(dir) == "scripts" {
			return filepath.Dir(dir)
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
