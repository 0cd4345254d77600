package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OffsetRequest
		wantErr error
	}{
		{"minimum", NewOffsetRequest(1, 10), nil},
		{"maximum", NewOffsetRequest(7, 100), nil},
		{"page zero", NewOffsetRequest(0, 10), ErrInvalidPage},
		{"negative page", NewOffsetRequest(-3, 10), ErrInvalidPage},
		{"size too small", NewOffsetRequest(1, 9), ErrInvalidPageSize},
		{"size too large", NewOffsetRequest(1, 101), ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSliceOffsetResult(t *testing.T) {
	all := make([]int, 37)
	for i := range all {
		all[i] = i
	}

	first := SliceOffsetResult(all, NewOffsetRequest(1, 10))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, first.Items)
	assert.EqualValues(t, 37, first.Total)
	assert.Equal(t, 4, first.TotalPages)

	last := SliceOffsetResult(all, NewOffsetRequest(4, 10))
	assert.Equal(t, []int{30, 31, 32, 33, 34, 35, 36}, last.Items)
	assert.Equal(t, 4, last.Page)
	assert.Equal(t, 10, last.PageSize)

	beyond := SliceOffsetResult(all, NewOffsetRequest(5, 10))
	require.NotNil(t, beyond.Items)
	assert.Empty(t, beyond.Items)
	assert.EqualValues(t, 37, beyond.Total)
	assert.Equal(t, 4, beyond.TotalPages)
}

func TestOffsetRequest_HugePage(t *testing.T) {
	req := NewOffsetRequest(math.MaxInt, 100)

	assert.Equal(t, math.MaxInt, req.Offset())
	assert.False(t, req.InRange(37))
	start, end := req.Bounds(37)
	assert.Equal(t, 37, start)
	assert.Equal(t, 37, end)

	var res *OffsetResult[int]
	require.NotPanics(t, func() {
		res = SliceOffsetResult(make([]int, 37), req)
	})
	require.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.EqualValues(t, 37, res.Total)
}

func TestOffsetRequest_InRange(t *testing.T) {
	assert.True(t, NewOffsetRequest(1, 10).InRange(1))
	assert.True(t, NewOffsetRequest(4, 10).InRange(37))
	assert.False(t, NewOffsetRequest(5, 10).InRange(37))
	assert.False(t, NewOffsetRequest(1, 10).InRange(0))
	assert.False(t, NewOffsetRequest(0, 10).InRange(37))

	start, end := NewOffsetRequest(4, 10).Bounds(37)
	assert.Equal(t, 30, start)
	assert.Equal(t, 37, end)
}

func TestSliceOffsetResult_DoesNotAliasInput(t *testing.T) {
	all := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}

	res := SliceOffsetResult(all, NewOffsetRequest(1, 10))
	res.Items[0] = "changed"

	assert.Equal(t, "a", all[0])
}

func TestTotalPages(t *testing.T) {
	for total := int64(0); total <= 250; total++ {
		for _, size := range []int{10, 25, 100} {
			pages := TotalPages(total, size)
			assert.GreaterOrEqual(t, int64(pages*size), total)
			if pages > 0 {
				assert.Less(t, int64((pages-1)*size), total)
			}
		}
	}
}

func TestEmptyOffsetResult(t *testing.T) {
	res := EmptyOffsetResult[string](NewOffsetRequest(3, 20))

	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.TotalPages)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 20, res.PageSize)
}
