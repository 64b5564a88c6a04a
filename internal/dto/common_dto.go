package dto

// PaginatedResponse wraps list payloads with the total row count so the
// dashboard can render page controls.
type PaginatedResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
