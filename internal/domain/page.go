package domain

// Page size limits for the prompt listing.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PaginationParams is a 1-indexed page of the prompt listing.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from the optional ?page= and
// ?limit= values. Missing or non-positive values fall back to page 1 and
// DefaultPageLimit; the limit is capped at MaxPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Bounds returns the [lo, hi) slice bounds of the page within n items.
// Both bounds are clamped to n, so a page past the end is empty. The page
// is compared before Offset is computed, so huge pages cannot overflow.
func (p PaginationParams) Bounds(n int) (lo, hi int) {
	if p.Page-1 > n/p.Limit {
		return n, n
	}
	lo = min(p.Offset(), n)
	hi = min(lo+p.Limit, n)
	return lo, hi
}

// Pages returns how many pages n items fill. Zero items fill zero pages.
func (p PaginationParams) Pages(n int) int {
	return (n + p.Limit - 1) / p.Limit
}
