package pagination

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = fmt.Errorf("page_size must be between %d and %d", PageMinSize, PageMaxSize)
)

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page     int `json:"page" query:"page" validate:"min=1"`
	PageSize int `json:"page_size" query:"page_size" validate:"min=10,max=100"`
}

func NewOffsetRequest(page, pageSize int) OffsetRequest {
	return OffsetRequest{Page: page, PageSize: pageSize}
}

// Validate rejects out-of-range parameters. Nothing is clamped.
func (r OffsetRequest) Validate() error {
	if r.Page < 1 {
		return ErrInvalidPage
	}
	if r.PageSize < PageMinSize || r.PageSize > PageMaxSize {
		return ErrInvalidPageSize
	}
	return nil
}

// Offset is the number of items before the page. It saturates at
// math.MaxInt instead of overflowing.
func (r OffsetRequest) Offset() int {
	if r.Page < 1 || r.PageSize < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.PageSize {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PageSize
}

// InRange reports whether the page holds at least one of total items.
func (r OffsetRequest) InRange(total int64) bool {
	if r.Page < 1 {
		return false
	}
	return int64(r.Page-1) < int64(TotalPages(total, r.PageSize))
}

// Bounds returns the [start, end) slice bounds of the page within total items.
// A page past the end yields start == end == total.
func (r OffsetRequest) Bounds(total int) (int, int) {
	if !r.InRange(int64(total)) {
		return total, total
	}
	start := r.Offset()
	end := start + r.PageSize
	if end > total {
		end = total
	}
	return start, end
}
