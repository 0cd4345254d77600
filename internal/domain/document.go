package domain

// ErrorCategory tags documents the crawler wrote for a failed page fetch.
const ErrorCategory = "LOG"

// DocumentRow is a crawled document joined with its catalog labels.
// JSON names follow the shape the reporting UI consumes.
type DocumentRow struct {
	SiteLabel        string `json:"site_name"`
	PageLabel        string `json:"page_id"`
	Title            string `json:"title"`
	RegistrationDate string `json:"registration_date"`
	CollectionDate   string `json:"collection_date"`
	SiteURL          string `json:"site_url"`
	DetailURL        string `json:"detail_url"`
	OriginURL        string `json:"org_url"`
	Summary          string `json:"summary"`
	SequenceID       string `json:"real_seq"`
	SiteKey          string `json:"site_code"`
	PageKey          string `json:"page_code"`
}

// Attachment is a stored file owned by exactly one document.
type Attachment struct {
	ID           int64  `json:"id"`
	ParentID     int64  `json:"parent_id"`
	SaveFolder   string `json:"save_folder"`
	SaveFileName string `json:"save_file_name"`
}

// DocumentKey addresses a document the way the crawler does.
type DocumentKey struct {
	SiteKey    string
	PageKey    string
	SequenceID string
}
