package settings

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DefaultCatalogSource  = "config/site_config.yaml"
	DefaultTimeZone       = "Asia/Seoul"
	DefaultCrawlerLogDir  = "logs"
	DefaultAttachmentsDir = "data/Attaches"
)

// Paging selects how search pages are produced.
type Paging string

const (
	PagingMemory Paging = "memory"
	PagingStore  Paging = "store"
)

// Settings are the reporting service options outside storage and HTTP.
type Settings struct {
	CatalogSource  string
	Location       *time.Location
	CrawlerLogDir  string
	AttachmentsDir string
	LogLevel       slog.Level
	Paging         Paging
}

func LoadEnv() (*Settings, error) {
	s := &Settings{
		CatalogSource:  getEnv("CATALOG_SOURCE", DefaultCatalogSource),
		CrawlerLogDir:  getEnv("CRAWLER_LOG_DIR", DefaultCrawlerLogDir),
		AttachmentsDir: getEnv("ATTACHMENTS_DIR", DefaultAttachmentsDir),
	}

	tz := getEnv("TIME_ZONE", DefaultTimeZone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIME_ZONE %q: %w", tz, err)
	}
	s.Location = loc

	level, err := ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	s.LogLevel = level

	switch p := Paging(strings.ToLower(getEnv("SEARCH_PAGING", string(PagingMemory)))); p {
	case PagingMemory, PagingStore:
		s.Paging = p
	default:
		return nil, fmt.Errorf("invalid SEARCH_PAGING value: %s, expected one of %v", p, []Paging{PagingMemory, PagingStore})
	}

	return s, nil
}

// ParseLevel maps LOG_LEVEL to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
