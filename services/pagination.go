package services

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Paginated is the uniform list envelope: {data, total, page, totalPages}.
type Paginated struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

// normalizePage clamps page/limit to sane values: 1-based pages, default
// page size 20, capped so a single request cannot dump whole tables.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}
