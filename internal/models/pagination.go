package models

// PerPage is the fixed page size for all search-paginate endpoints.
const PerPage = 10

// PaginationBody is the request payload for search-paginate endpoints.
type PaginationBody struct {
	Term string `json:"term"`
	Page int    `json:"page"`
}

// Pagination describes the page window of a search result.
type Pagination struct {
	PerPage     int   `json:"per_page"`
	TotalPage   int   `json:"total_page"`
	Count       int64 `json:"count"`
	CurrentPage int   `json:"current_page"`
}

// Offset returns the row offset for the requested page. Pages are 1-based;
// anything below 1 is clamped to the first page.
func (b PaginationBody) Offset() int {
	page := b.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * PerPage
}

// NewPagination builds the pagination block for a total row count.
func NewPagination(count int64, page int) Pagination {
	if page < 1 {
		page = 1
	}
	totalPage := int((count + PerPage - 1) / PerPage)
	return Pagination{
		PerPage:     PerPage,
		TotalPage:   totalPage,
		Count:       count,
		CurrentPage: page,
	}
}
