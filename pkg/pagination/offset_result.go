package pagination

// OffsetResult represents one page of an offset-paginated listing
type OffsetResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewOffsetResult creates a new offset-based result
func NewOffsetResult[T any](items []T, total int64, req OffsetRequest) *OffsetResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &OffsetResult[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: TotalPages(total, req.PageSize),
	}
}

// EmptyOffsetResult echoes the request with no items.
func EmptyOffsetResult[T any](req OffsetRequest) *OffsetResult[T] {
	return NewOffsetResult[T](nil, 0, req)
}

// SliceOffsetResult cuts the requested page out of a fully materialized listing.
func SliceOffsetResult[T any](all []T, req OffsetRequest) *OffsetResult[T] {
	start, end := req.Bounds(len(all))
	page := make([]T, end-start)
	copy(page, all[start:end])
	return NewOffsetResult(page, int64(len(all)), req)
}

// TotalPages is ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
