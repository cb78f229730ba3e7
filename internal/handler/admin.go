package handler

import (
	"context"
	"errors"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

// AdminListPrompts handles GET /admin/prompts.
// Drafts are included and the catalog order is kept.
func (s *Server) AdminListPrompts(ctx context.Context, _ gen.AdminListPromptsRequestObject) (gen.AdminListPromptsResponseObject, error) {
	prompts, err := s.prompts.ListAll(ctx, actor(ctx))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.AdminListPrompts401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.AdminListPrompts403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	out := make(gen.AdminListPrompts200JSONResponse, len(prompts))
	for i, p := range prompts {
		out[i] = promptToResponse(p)
	}
	return out, nil
}

// GetAdminStats handles GET /admin/stats.
func (s *Server) GetAdminStats(ctx context.Context, _ gen.GetAdminStatsRequestObject) (gen.GetAdminStatsResponseObject, error) {
	st, err := s.prompts.Stats(ctx, actor(ctx))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.GetAdminStats401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.GetAdminStats403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.GetAdminStats200JSONResponse{
		TotalPrompts:     st.TotalPrompts,
		PublishedPrompts: st.PublishedPrompts,
		FeaturedPrompts:  st.FeaturedPrompts,
		TotalViews:       st.TotalViews,
		TotalCopies:      st.TotalCopies,
	}, nil
}
