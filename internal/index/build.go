package index

import (
	"context"
	"log/slog"

	"github.com/wrenfield/docdex/internal/checksum"
	"github.com/wrenfield/docdex/internal/storage"
)

// Config carries the scan and output settings for a Builder.
type Config struct {
	Collections  []string
	Output       string
	RegenCommand string
}

// Builder runs the scan, aggregate, render, write pipeline against a
// storage provider.
type Builder struct {
	store  storage.Provider
	cfg    Config
	logger *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(store storage.Provider, cfg Config, logger *slog.Logger) *Builder {
	return &Builder{store: store, cfg: cfg, logger: logger}
}

// Summary reports the outcome of one build.
type Summary struct {
	Output   string // repo-relative output path
	TagCount int
	Checksum string
	Written  bool
}

// Build scans the collections and overwrites the output file. Nothing is
// written when the scan fails, so a previous output survives intact.
func (b *Builder) Build(ctx context.Context) (Summary, error) {
	return b.run(ctx, "")
}

// BuildIfChanged behaves like Build but skips the write when the rendered
// content's checksum equals prev. The summary reports whether a write
// happened.
func (b *Builder) BuildIfChanged(ctx context.Context, prev string) (Summary, error) {
	return b.run(ctx, prev)
}

func (b *Builder) run(_ context.Context, prev string) (Summary, error) {
	ix, err := Scan(b.store, b.cfg.Collections, b.logger)
	if err != nil {
		return Summary{}, err
	}
	rendered := ix.Render(b.cfg.RegenCommand)
	s := Summary{
		Output:   b.cfg.Output,
		TagCount: ix.Len(),
		Checksum: checksum.Sum(rendered),
	}
	if prev != "" && prev == s.Checksum {
		b.logger.Debug("index: output unchanged", slog.String("checksum", checksum.Short(rendered)))
		return s, nil
	}
	if err := b.store.Write(b.cfg.Output, rendered); err != nil {
		return Summary{}, err
	}
	s.Written = true
	b.logger.Info("index: wrote output",
		slog.String("path", b.cfg.Output),
		slog.Int("tags", s.TagCount),
		slog.String("checksum", checksum.Short(rendered)))
	return s, nil
}
