// Package main Crawl Report API
// @title Crawl Report API
// @version 1.0
// @description Dashboard metrics, keyword search and statistics over crawled documents
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/crawl-report/docs"
	"github.com/DjordjeVuckovic/crawl-report/internal/app"
	"github.com/DjordjeVuckovic/crawl-report/internal/router"
	"github.com/DjordjeVuckovic/crawl-report/internal/server"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/crawl-report/pkg/server"
	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}
	slog.SetLogLoggerLevel(cfg.Settings.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	// opened before the server so /health can ping it
	store, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, pkgserver.WithTimeout(store.Health, healthTimeout)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Crawl Report API is running")
	})

	a := app.New(store, cfg.Settings, nil)

	if _, err := a.SyncCatalog(s.Context()); err != nil {
		slog.Error("Startup catalog sync failed, continuing with stored catalog", "error", err)
	}

	api := s.Echo.Group("/api/v1")
	router.NewDashboardRouter(api, a.Dashboard).Bind()
	router.NewSearchRouter(api, a.Search).Bind()
	router.NewStatisticsRouter(api, a.Statistics).Bind()
	router.NewCatalogRouter(api, a.Registry, a.Syncer, cfg.Settings.CatalogSource).Bind()
	router.NewLogRouter(api, a.Logs).Bind()
	router.NewAttachmentRouter(api, a.Attachments).Bind()
	router.NewSystemRouter(api, a).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	a.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
