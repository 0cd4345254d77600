package domain

type SiteCount struct {
	Site  string `json:"site"`
	Count int64  `json:"count"`
}

type SiteFileCount struct {
	Site      string `json:"site"`
	FileCount int64  `json:"file_count"`
}

type DetailCount struct {
	Site  string `json:"site"`
	Page  string `json:"page"`
	Posts int64  `json:"posts"`
	Files int64  `json:"files"`
}

type Overview struct {
	TotalSites       int64 `json:"total_sites"`
	TotalPages       int64 `json:"total_pages"`
	TotalPosts       int64 `json:"total_posts"`
	TotalAttachments int64 `json:"total_attachments"`
}

type CollectionPeriod struct {
	FirstDate *string `json:"first_date"`
	LastDate  *string `json:"last_date"`
}

// DashboardMetrics holds "count (attachment count)" display strings per
// window. SiteCount mirrors TotalCollect.
type DashboardMetrics struct {
	SiteCount        string `json:"site_count"`
	TodayCollect     string `json:"today_collect"`
	ThreeDaysCollect string `json:"three_days_collect"`
	SevenDaysCollect string `json:"seven_days_collect"`
	TotalCollect     string `json:"total_collect"`
	ErrorCount       int64  `json:"error_count"`
}
