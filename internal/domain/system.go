package domain

import "time"

// SystemInfo describes the running service for the settings page.
type SystemInfo struct {
	GoVersion       string     `json:"go_version"`
	DatabaseType    string     `json:"database_type"`
	DatabaseHealthy bool       `json:"database_healthy"`
	TimeZone        string     `json:"time_zone"`
	CatalogSource   string     `json:"catalog_source"`
	CatalogVersion  string     `json:"catalog_version"`
	CatalogSyncedAt *time.Time `json:"catalog_synced_at"`
	CatalogSites    int        `json:"catalog_sites"`
	CatalogPages    int        `json:"catalog_pages"`
	SearchPaging    string     `json:"search_paging"`
}
