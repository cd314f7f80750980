package pagination

import "math"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Normalize clamps the page to at least 1 and the size into (0, PageMaxSize].
// The page is capped so Offset never overflows.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	if maxPage := math.MaxInt / r.Size; r.Page > maxPage {
		r.Page = maxPage
	}
}

func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasMore bool `json:"has_more"`
}

// Paginate cuts one page out of an in-memory slice. Pages past the end are empty.
func Paginate[T any](items []T, req OffsetRequest) *OffsetResult[T] {
	req.Normalize()

	total := len(items)
	start := min(req.Offset(), total)
	end := min(start+req.Size, total)

	page := make([]T, end-start)
	copy(page, items[start:end])

	return &OffsetResult[T]{
		Items:   page,
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
		HasMore: end < total,
	}
}
