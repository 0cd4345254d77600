package catalog

import (
	"context"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/crawl-report/internal/apperr"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage"
	"github.com/google/uuid"
)

type Result struct {
	Sites   int       `json:"site_count"`
	Pages   int       `json:"page_count"`
	Version uuid.UUID `json:"version"`
}

// Syncer replaces the stored catalog with a declarative description.
type Syncer struct {
	writer   storage.CatalogWriter
	registry *Registry
}

func NewSyncer(writer storage.CatalogWriter, registry *Registry) *Syncer {
	return &Syncer{writer: writer, registry: registry}
}

// SyncFile loads path and syncs it. Running it twice with the same file
// leaves an identical table.
func (s *Syncer) SyncFile(ctx context.Context, path string) (*Result, error) {
	src, err := LoadFile(path)
	if err != nil {
		slog.Error("Failed to load catalog source", "path", path, "error", err)
		return nil, apperr.NewCatalogSync(path, err)
	}
	return s.apply(ctx, path, src)
}

func (s *Syncer) Sync(ctx context.Context, name string, r io.Reader) (*Result, error) {
	src, err := NewYAMLLoader(r).Load()
	if err != nil {
		slog.Error("Failed to parse catalog source", "source", name, "error", err)
		return nil, apperr.NewCatalogSync(name, err)
	}
	return s.apply(ctx, name, src)
}

func (s *Syncer) apply(ctx context.Context, name string, src *Source) (*Result, error) {
	entries := src.Entries()

	if err := s.writer.ReplaceCatalog(ctx, entries); err != nil {
		slog.Error("Failed to write catalog", "source", name, "error", err)
		return nil, apperr.NewCatalogSync(name, err)
	}

	snap := s.registry.publish(entries)
	if len(entries) == 0 {
		slog.Warn("Catalog is empty, every report will be empty", "source", name)
	}
	slog.Info("Catalog synced",
		"source", name,
		"sites", len(src.Sites),
		"pages", len(entries),
		"version", snap.Version)

	return &Result{
		Sites:   len(src.Sites),
		Pages:   len(entries),
		Version: snap.Version,
	}, nil
}
