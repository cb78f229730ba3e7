package service

import (
	"context"
	"fmt"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// catalog is the read side of PromptService that ExportService needs.
type catalog interface {
	ListAll(ctx context.Context, actor domain.User) ([]domain.Prompt, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// ExportService assembles a flat export of the whole catalog for admins.
type ExportService struct {
	catalog catalog
}

// NewExportService constructs an ExportService reading from c.
func NewExportService(c catalog) *ExportService {
	return &ExportService{catalog: c}
}

// Export returns one ExportRow per prompt, drafts included, in collection
// order. Category ids that match no category export with an empty slug.
func (s *ExportService) Export(ctx context.Context, actor domain.User) ([]domain.ExportRow, error) {
	prompts, err := s.catalog.ListAll(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	slugs := make(map[int64]string, len(categories))
	for _, c := range categories {
		slugs[c.ID] = c.Slug
	}

	rows := make([]domain.ExportRow, 0, len(prompts))
	for _, p := range prompts {
		rows = append(rows, domain.ExportRow{
			ID:           p.ID,
			Title:        p.Title,
			Type:         p.Type,
			CategorySlug: slugs[p.CategoryID],
			AuthorName:   p.AuthorName,
			IsPublished:  p.IsPublished,
			IsFeatured:   p.IsFeatured,
			ViewCount:    p.ViewCount,
			CopyCount:    p.CopyCount,
			Versions:     len(p.Versions),
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
			Tags:         p.Tags,
		})
	}
	return rows, nil
}
