package handler

import (
	"context"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

// ListCategories handles GET /categories.
func (s *Server) ListCategories(ctx context.Context, _ gen.ListCategoriesRequestObject) (gen.ListCategoriesResponseObject, error) {
	cats, err := s.prompts.Categories(ctx)
	if err != nil {
		return nil, err
	}
	out := make(gen.ListCategories200JSONResponse, len(cats))
	for i, c := range cats {
		out[i] = categoryToResponse(c)
	}
	return out, nil
}

// ListTags handles GET /tags.
func (s *Server) ListTags(ctx context.Context, _ gen.ListTagsRequestObject) (gen.ListTagsResponseObject, error) {
	tags, err := s.prompts.Tags(ctx)
	if err != nil {
		return nil, err
	}
	out := make(gen.ListTags200JSONResponse, len(tags))
	for i, t := range tags {
		out[i] = gen.TagCount{Name: t.Name, Count: t.Count}
	}
	return out, nil
}

// SuggestTags handles GET /tags/suggest?q=.
func (s *Server) SuggestTags(ctx context.Context, req gen.SuggestTagsRequestObject) (gen.SuggestTagsResponseObject, error) {
	var q string
	if req.Params.Q != nil {
		q = *req.Params.Q
	}
	tags, err := s.prompts.SuggestTags(ctx, q)
	if err != nil {
		return nil, err
	}
	return gen.SuggestTags200JSONResponse{Tags: tags}, nil
}

func categoryToResponse(c domain.Category) gen.Category {
	resp := gen.Category{
		Id:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
	if c.Color != "" {
		resp.Color = &c.Color
	}
	return resp
}
