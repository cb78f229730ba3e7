package domain

// Sort selects the ordering of a public prompt query.
type Sort string

const (
	// SortNone keeps collection order.
	SortNone Sort = ""
	// SortNewest orders by created_at, most recent first.
	SortNewest Sort = "newest"
	// SortPopular orders by view_count, highest first.
	SortPopular Sort = "popular"
	// SortViews is advertised by clients but has no defined ordering.
	// It is accepted and treated like SortNone.
	SortViews Sort = "views"
)

// QueryParams is the normalized filter/sort specification for the public
// prompt listing. Zero values disable the corresponding filter.
type QueryParams struct {
	// Search is matched case-insensitively against title, description and tags.
	Search string
	// CategoryID restricts results to one category. Zero means all categories.
	CategoryID int64
	// Type restricts results to one prompt type. Empty means all types.
	Type PromptType
	// Sort selects the result order.
	Sort Sort
}

// Stats summarises the whole collection for the admin dashboard.
type Stats struct {
	TotalPrompts     int   `json:"total_prompts"`
	PublishedPrompts int   `json:"published_prompts"`
	FeaturedPrompts  int   `json:"featured_prompts"`
	TotalViews       int64 `json:"total_views"`
	TotalCopies      int64 `json:"total_copies"`
}
