package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/crawl-report/internal/settings"
	"github.com/DjordjeVuckovic/crawl-report/internal/storage/factory"
	"github.com/DjordjeVuckovic/crawl-report/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ReportApiConfig struct {
	StorageConfig factory.StorageConfig
	Settings      *settings.Settings
}

func (as *AppConfig) Load() (*ReportApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, ".env", "cmd/report_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	s, err := settings.LoadEnv()
	if err != nil {
		slog.Error("Failed to load report settings from environment", "error", err)
		return nil, err
	}

	return &ReportApiConfig{
		StorageConfig: *storageCfg,
		Settings:      s,
	}, nil
}
