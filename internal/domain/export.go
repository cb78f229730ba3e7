package domain

import "time"

// ExportRow is a single row in the full-catalog export.
// It is a flat, denormalized view: one row per prompt with the category
// name resolved and counters inlined, suitable for CSV.
//
// Tags keeps the prompt's own tag order.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	ID           int64
	Title        string
	Type         PromptType
	CategorySlug string // empty when the category id is unknown
	AuthorName   string
	IsPublished  bool
	IsFeatured   bool
	ViewCount    int64
	CopyCount    int64
	Versions     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Tags         []string
}
