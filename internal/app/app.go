package app

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/crawl-report/internal/attachment"
	"github.com/DjordjeVuckovic/crawl-report/internal/catalog"
	"github.com/DjordjeVuckovic/crawl-report/internal/dashboard"
	"github.com/DjordjeVuckovic/crawl-report/internal/domain"
	"github.com/DjordjeVuckovic/crawl-report/internal/logstore"
	"github.com/DjordjeVuckovic/crawl-report/internal/search"
	"github.com/DjordjeVuckovic/crawl-report/internal/settings"
	"github.com/DjordjeVuckovic/crawl-report/internal/statistics"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/factory"
)

// App wires the reporting components onto one store.
type App struct {
	Settings    *settings.Settings
	Store       *factory.Store
	Registry    *catalog.Registry
	Syncer      *catalog.Syncer
	Dashboard   *dashboard.Aggregator
	Search      *search.Engine
	Statistics  *statistics.Roller
	Logs        *logstore.Store
	Attachments *attachment.Store
}

func New(store *factory.Store, s *settings.Settings, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}

	registry := catalog.NewRegistry(store.Executor)

	var opts []search.Option
	if s.Paging == settings.PagingStore {
		opts = append(opts, search.WithSource(search.NewStoreSource(store.Executor, store.Dialect)))
	}

	return &App{
		Settings:    s,
		Store:       store,
		Registry:    registry,
		Syncer:      catalog.NewSyncer(store.Catalog, registry),
		Dashboard:   dashboard.NewAggregator(store.Executor, store.Dialect, dashboard.NewClock(now, s.Location)),
		Search:      search.NewEngine(store.Executor, store.Dialect, opts...),
		Statistics:  statistics.NewRoller(store.Executor, store.Dialect),
		Logs:        logstore.NewStore(s.CrawlerLogDir, now, s.Location),
		Attachments: attachment.NewStore(store.Executor, store.Dialect, s.AttachmentsDir),
	}
}

// SyncCatalog refreshes the catalog from the configured source. On failure
// the stored catalog keeps serving and the error is only returned for
// reporting.
func (a *App) SyncCatalog(ctx context.Context) (*catalog.Result, error) {
	res, err := a.Syncer.SyncFile(ctx, a.Settings.CatalogSource)
	if err == nil {
		return res, nil
	}

	slog.Warn("Catalog sync failed, serving stored catalog", "source", a.Settings.CatalogSource, "error", err)
	snap, reloadErr := a.Registry.Reload(ctx)
	if reloadErr != nil {
		slog.Error("Failed to load stored catalog", "error", reloadErr)
	} else {
		slog.Info("Stored catalog loaded", "pages", len(snap.Entries))
	}
	return nil, err
}

// SystemInfo reports the runtime, store and catalog state.
func (a *App) SystemInfo(ctx context.Context) domain.SystemInfo {
	snap := a.Registry.Current()
	info := domain.SystemInfo{
		GoVersion:       runtime.Version(),
		DatabaseType:    string(a.Store.Type),
		DatabaseHealthy: a.Store.Health.Healthy(ctx),
		TimeZone:        a.Settings.Location.String(),
		CatalogSource:   a.Settings.CatalogSource,
		CatalogSites:    len(snap.Sites()),
		CatalogPages:    len(snap.Entries),
		SearchPaging:    string(a.Settings.Paging),
	}
	if !snap.SyncedAt.IsZero() {
		syncedAt := snap.SyncedAt
		info.CatalogVersion = snap.Version.String()
		info.CatalogSyncedAt = &syncedAt
	}
	return info
}

func (a *App) Close() {
	a.Store.Close()
}
