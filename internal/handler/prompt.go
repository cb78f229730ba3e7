package handler

import (
	"context"
	"errors"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
	"github.com/pkordes/promptlib/backend/internal/query"
)

// ListPrompts handles GET /prompts.
// Filters and sort are normalized by query.NormalizeParams. The result is
// paged only when ?page= or ?limit= is given (defaults: page=1, limit=20, max=100).
func (s *Server) ListPrompts(ctx context.Context, req gen.ListPromptsRequestObject) (gen.ListPromptsResponseObject, error) {
	p := req.Params
	params := query.NormalizeParams(deref(p.Search), deref(p.CategoryId), deref(p.Type), deref(p.Sort))

	prompts, err := s.prompts.Query(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := gen.ListPrompts200JSONResponse{}
	if p.Page != nil || p.Limit != nil {
		page := domain.NewPaginationParams(p.Page, p.Limit)
		lo, hi := page.Bounds(len(prompts))
		resp.Pagination = &gen.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      len(prompts),
			TotalPages: page.Pages(len(prompts)),
		}
		prompts = prompts[lo:hi]
	}

	resp.Data = make([]gen.Prompt, len(prompts))
	for i, pr := range prompts {
		resp.Data[i] = promptToResponse(pr)
	}
	return resp, nil
}

// CreatePrompt handles POST /prompts.
func (s *Server) CreatePrompt(ctx context.Context, req gen.CreatePromptRequestObject) (gen.CreatePromptResponseObject, error) {
	if req.Body == nil {
		return gen.CreatePrompt422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.prompts.Create(ctx, actor(ctx), requestToInput(req.Body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.CreatePrompt401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CreatePrompt422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreatePrompt201JSONResponse(promptToResponse(created)), nil
}

// GetPrompt handles GET /prompts/{id}. Each successful fetch counts as a view.
func (s *Server) GetPrompt(ctx context.Context, req gen.GetPromptRequestObject) (gen.GetPromptResponseObject, error) {
	p, err := s.prompts.IncrementView(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPrompt404JSONResponse(notFoundBody("prompt not found")), nil
		}
		return nil, err
	}

	return gen.GetPrompt200JSONResponse(promptToResponse(p)), nil
}

// UpdatePrompt handles PATCH /prompts/{id}.
func (s *Server) UpdatePrompt(ctx context.Context, req gen.UpdatePromptRequestObject) (gen.UpdatePromptResponseObject, error) {
	if req.Body == nil {
		return gen.UpdatePrompt422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.prompts.Update(ctx, actor(ctx), req.Id, requestToPatch(req.Body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.UpdatePrompt401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.UpdatePrompt403JSONResponse(forbiddenBody(err)), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdatePrompt404JSONResponse(notFoundBody("prompt not found")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdatePrompt422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdatePrompt200JSONResponse(promptToResponse(updated)), nil
}

// DeletePrompt handles DELETE /prompts/{id}. Deleting an absent prompt succeeds.
func (s *Server) DeletePrompt(ctx context.Context, req gen.DeletePromptRequestObject) (gen.DeletePromptResponseObject, error) {
	err := s.prompts.Delete(ctx, actor(ctx), req.Id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.DeletePrompt401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.DeletePrompt403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.DeletePrompt204Response{}, nil
}

// CopyPrompt handles POST /prompts/{id}/copy.
// It counts the copy and returns the text the client should place on the clipboard.
func (s *Server) CopyPrompt(ctx context.Context, req gen.CopyPromptRequestObject) (gen.CopyPromptResponseObject, error) {
	p, err := s.prompts.IncrementCopy(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CopyPrompt404JSONResponse(notFoundBody("prompt not found")), nil
		}
		return nil, err
	}

	return gen.CopyPrompt200JSONResponse{Content: p.Content(), CopyCount: p.CopyCount}, nil
}

// TogglePromptFeature handles POST /prompts/{id}/feature.
func (s *Server) TogglePromptFeature(ctx context.Context, req gen.TogglePromptFeatureRequestObject) (gen.TogglePromptFeatureResponseObject, error) {
	err := s.prompts.ToggleFeature(ctx, actor(ctx), req.Id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.TogglePromptFeature401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.TogglePromptFeature403JSONResponse(forbiddenBody(err)), nil
		}
		return nil, err
	}

	return gen.TogglePromptFeature204Response{}, nil
}

// EnhancePrompt handles POST /enhance.
func (s *Server) EnhancePrompt(ctx context.Context, req gen.EnhancePromptRequestObject) (gen.EnhancePromptResponseObject, error) {
	if req.Body == nil {
		return gen.EnhancePrompt422JSONResponse(requestBody("request body is required")), nil
	}

	out, err := s.prompts.Enhance(ctx, actor(ctx), req.Body.Draft)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return gen.EnhancePrompt401JSONResponse(unauthorizedBody()), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.EnhancePrompt422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.EnhancePrompt200JSONResponse{SystemPrompt: out}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToInput converts a CreatePromptRequest body into a domain.PromptInput.
// Absent fields stay at their zero value and are defaulted by the service.
func requestToInput(body *gen.CreatePromptRequest) domain.PromptInput {
	in := domain.PromptInput{
		Title:        deref(body.Title),
		Description:  deref(body.Description),
		PromptText:   deref(body.PromptText),
		SystemPrompt: deref(body.SystemPrompt),
		UserPrompt:   deref(body.UserPrompt),
	}
	if body.PromptType != nil {
		in.Type = domain.PromptType(*body.PromptType)
	}
	if body.CategoryId != nil {
		in.CategoryID = *body.CategoryId
	}
	if body.Tags != nil {
		in.Tags = *body.Tags
	}
	if body.Enhance != nil {
		in.Enhance = *body.Enhance
	}
	return in
}

// requestToPatch converts an UpdatePromptRequest body into a domain.PromptPatch.
// Pointer fields carry over unchanged so "absent" stays distinct from "empty".
func requestToPatch(body *gen.UpdatePromptRequest) domain.PromptPatch {
	patch := domain.PromptPatch{
		Title:        body.Title,
		Description:  body.Description,
		PromptText:   body.PromptText,
		SystemPrompt: body.SystemPrompt,
		UserPrompt:   body.UserPrompt,
		CategoryID:   body.CategoryId,
		Tags:         body.Tags,
		IsFeatured:   body.IsFeatured,
		IsPublished:  body.IsPublished,
		ChangeNote:   deref(body.ChangeNote),
	}
	if body.PromptType != nil {
		t := domain.PromptType(*body.PromptType)
		patch.Type = &t
	}
	return patch
}

// promptToResponse converts a domain.Prompt into the generated gen.Prompt type.
// Tags and versions are always arrays in JSON, never null.
func promptToResponse(p domain.Prompt) gen.Prompt {
	resp := gen.Prompt{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		PromptText:  p.PromptText,
		Content:     p.Content(),
		PromptType:  gen.PromptType(p.Type),
		Language:    p.Language,
		CategoryId:  p.CategoryID,
		AuthorId:    p.AuthorID,
		AuthorName:  p.AuthorName,
		IsFeatured:  p.IsFeatured,
		IsPublished: p.IsPublished,
		ViewCount:   p.ViewCount,
		CopyCount:   p.CopyCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Tags:        make([]string, len(p.Tags)),
		Versions:    make([]gen.PromptVersion, len(p.Versions)),
	}
	copy(resp.Tags, p.Tags)
	if p.SystemPrompt != "" {
		resp.SystemPrompt = &p.SystemPrompt
	}
	if p.UserPrompt != "" {
		resp.UserPrompt = &p.UserPrompt
	}
	for i, v := range p.Versions {
		resp.Versions[i] = gen.PromptVersion{
			Id:            v.ID,
			VersionNumber: v.VersionNumber,
			PromptText:    v.PromptText,
			ChangeNote:    v.ChangeNote,
			CreatedAt:     v.CreatedAt,
		}
	}
	return resp
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
