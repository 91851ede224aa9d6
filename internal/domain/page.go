package domain

// Pagination bounds.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items []T
	Page  int
	Limit int
	Total int
}

// TotalPages returns the number of pages for Total items.
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// NormalizePage validates page (1-based) and limit; limit 0 selects the default.
func NormalizePage(page, limit int) (int, int, error) {
	if page < 1 {
		return 0, 0, NewError(CodeInvalidPagination, "page must be at least 1, got %d", page)
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit < 1 || limit > MaxPageLimit {
		return 0, 0, NewError(CodeInvalidPagination, "limit must be between 1 and %d, got %d", MaxPageLimit, limit)
	}
	return page, limit, nil
}

// Offset returns the row offset for a normalized page and limit.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
