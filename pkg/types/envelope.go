package types

// Status values carried on normalized service results
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Pagination describes server-driven pagination state for a list response
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
}

// Result is the normalized shape every resource service returns,
// regardless of which envelope the backend responded with.
type Result[T any] struct {
	Status     string      `json:"status"`
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ListQuery holds parameters shared by every list endpoint. Zero values
// are omitted from the outgoing query string.
type ListQuery struct {
	Page      int    `json:"page,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}
