package dto

// Page represents one page of a paged list endpoint, in the backend's
// paging shape.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

// PageQuery selects one page of a paged list endpoint. Pages are 1-based.
type PageQuery struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the query to the backend's accepted range
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Size <= 0 || q.Size > MaxPageSize {
		q.Size = DefaultPageSize
	}
	return q
}
