package domain

// CatalogEntry labels every document of one (site, page) pair.
type CatalogEntry struct {
	SiteKey   string `json:"site_key"`
	PageKey   string `json:"page_key"`
	SiteLabel string `json:"site_label"`
	PageLabel string `json:"page_label"`
	SiteURL   string `json:"site_url"`
	DetailURL string `json:"detail_url"`
}

// Site is one entry of the search form site list.
type Site struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
