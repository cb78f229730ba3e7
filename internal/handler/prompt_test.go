package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

// ---- GET /prompts ----------------------------------------------------------

func TestListPrompts_NormalizesQueryParams(t *testing.T) {
	var got domain.QueryParams
	svc := &mockPromptServicer{
		query: func(_ context.Context, p domain.QueryParams) ([]domain.Prompt, error) {
			got = p
			return []domain.Prompt{promptFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prompts?search=%20Review%20&category_id=2&type=Code&sort=popular", nil)
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.QueryParams{
		Search:     "Review",
		CategoryID: 2,
		Type:       domain.PromptTypeCode,
		Sort:       domain.SortPopular,
	}, got)

	var body gen.PromptList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Nil(t, body.Pagination, "no pagination block unless page or limit is given")
	assert.Equal(t, "You are a senior engineer.\n\nReview this diff.", body.Data[0].Content)
}

func TestListPrompts_AllSentinelsDisableFilters(t *testing.T) {
	var got domain.QueryParams
	svc := &mockPromptServicer{
		query: func(_ context.Context, p domain.QueryParams) ([]domain.Prompt, error) {
			got = p
			return []domain.Prompt{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prompts?category_id=all&type=all", nil)
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.QueryParams{}, got)

	var body gen.PromptList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotNil(t, body.Data, "data must be an empty array, not null")
	assert.Empty(t, body.Data)
}

func TestListPrompts_Paginated(t *testing.T) {
	all := make([]domain.Prompt, 5)
	for i := range all {
		all[i] = promptFixture()
		all[i].ID = int64(i + 1)
	}
	svc := &mockPromptServicer{
		query: func(context.Context, domain.QueryParams) ([]domain.Prompt, error) { return all, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/prompts?page=2&limit=2", nil)
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body gen.PromptList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, int64(3), body.Data[0].Id)
	assert.Equal(t, int64(4), body.Data[1].Id)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, gen.Pagination{Page: 2, Limit: 2, Total: 5, TotalPages: 3}, *body.Pagination)
}

func TestListPrompts_PagePastEndIsEmpty(t *testing.T) {
	svc := &mockPromptServicer{
		query: func(context.Context, domain.QueryParams) ([]domain.Prompt, error) {
			return []domain.Prompt{promptFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prompts?page=9", nil)
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body gen.PromptList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Empty(t, body.Data)
	assert.Equal(t, 1, body.Pagination.Total)
	assert.Equal(t, 20, body.Pagination.Limit)
}

func TestListPrompts_HugePageIsEmpty(t *testing.T) {
	svc := &mockPromptServicer{
		query: func(context.Context, domain.QueryParams) ([]domain.Prompt, error) {
			return []domain.Prompt{promptFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prompts?page=4611686018427387904&limit=20", nil)
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body gen.PromptList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Empty(t, body.Data)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 1, body.Pagination.Total)
	assert.Equal(t, 4611686018427387904, body.Pagination.Page)
}

func TestListPrompts_BadPageParam_Returns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/prompts?page=abc", nil)
	rec := serve(newHTTPHandler(&mockPromptServicer{}, nil, nil), req, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_parameter", decodeError(t, rec).Code)
}

// ---- POST /prompts ---------------------------------------------------------

func TestCreatePrompt_201(t *testing.T) {
	var gotActor domain.User
	var gotInput domain.PromptInput
	svc := &mockPromptServicer{
		create: func(_ context.Context, a domain.User, in domain.PromptInput) (domain.Prompt, error) {
			gotActor, gotInput = a, in
			p := promptFixture()
			p.Title = in.Title
			return p, nil
		},
	}

	req := jsonRequest(t, http.MethodPost, "/prompts", map[string]any{
		"title":       "Summarizer",
		"user_prompt": "Summarize this",
		"prompt_type": "Text",
		"category_id": 3,
		"tags":        []string{"summary"},
		"enhance":     true,
	})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, wizard, gotActor)
	assert.Equal(t, domain.PromptInput{
		Title:      "Summarizer",
		UserPrompt: "Summarize this",
		Type:       domain.PromptTypeText,
		CategoryID: 3,
		Tags:       []string{"summary"},
		Enhance:    true,
	}, gotInput)

	var resp gen.Prompt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Summarizer", resp.Title)
}

func TestCreatePrompt_Anonymous_Returns401(t *testing.T) {
	svc := &mockPromptServicer{
		create: func(_ context.Context, a domain.User, _ domain.PromptInput) (domain.Prompt, error) {
			assert.True(t, a.IsAnonymous())
			return domain.Prompt{}, fmt.Errorf("service.PromptService.Create: %w", domain.ErrUnauthorized)
		},
	}

	req := jsonRequest(t, http.MethodPost, "/prompts", map[string]any{"title": "x"})
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeError(t, rec).Code)
}

func TestCreatePrompt_422_ValidationError(t *testing.T) {
	svc := &mockPromptServicer{
		create: func(context.Context, domain.User, domain.PromptInput) (domain.Prompt, error) {
			return domain.Prompt{}, fmt.Errorf("service.PromptService.Create: %w: title must be at most 200 characters", domain.ErrValidation)
		},
	}

	req := jsonRequest(t, http.MethodPost, "/prompts", map[string]any{"title": strings.Repeat("x", 201)})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "validation_error", detail.Code)
	assert.Equal(t, "title must be at most 200 characters", detail.Message)
}

func TestCreatePrompt_MalformedJSON_Returns400(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/prompts", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(newHTTPHandler(&mockPromptServicer{}, nil, nil), req, &wizard)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec).Code)
}

func TestCreatePrompt_BodyTooLarge_Returns413(t *testing.T) {
	h := newHTTPHandler(&mockPromptServicer{}, nil, nil)
	limited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 8)
		h.ServeHTTP(w, r)
	})

	req := jsonRequest(t, http.MethodPost, "/prompts", map[string]any{"title": "far more than eight bytes"})
	rec := serve(limited, req, &wizard)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "payload_too_large", decodeError(t, rec).Code)
}

func TestCreatePrompt_StorageError_Returns503(t *testing.T) {
	svc := &mockPromptServicer{
		create: func(context.Context, domain.User, domain.PromptInput) (domain.Prompt, error) {
			return domain.Prompt{}, fmt.Errorf("repo.Save: %w: disk full", domain.ErrStorageUnavailable)
		},
	}

	req := jsonRequest(t, http.MethodPost, "/prompts", map[string]any{"title": "x"})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "storage_unavailable", decodeError(t, rec).Code)
}

// ---- GET /prompts/{id} -----------------------------------------------------

func TestGetPrompt_200_CountsView(t *testing.T) {
	var gotID int64
	svc := &mockPromptServicer{
		incrementView: func(_ context.Context, id int64) (domain.Prompt, error) {
			gotID = id
			p := promptFixture()
			p.ViewCount++
			return p, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/prompts/7", nil)
	rec := serve(newHTTPHandler(svc, nil, nil), req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotID)

	var resp gen.Prompt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(11), resp.ViewCount)
	assert.Equal(t, []string{"review", "go"}, resp.Tags)
	assert.NotNil(t, resp.Versions)
	require.NotNil(t, resp.SystemPrompt)
	assert.Equal(t, "You are a senior engineer.", *resp.SystemPrompt)
}

func TestGetPrompt_404(t *testing.T) {
	svc := &mockPromptServicer{
		incrementView: func(context.Context, int64) (domain.Prompt, error) {
			return domain.Prompt{}, fmt.Errorf("service.PromptService.IncrementView: %w", domain.ErrNotFound)
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodGet, "/prompts/999", nil), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "not_found", detail.Code)
	assert.Equal(t, "prompt not found", detail.Message)
}

func TestGetPrompt_NonNumericID_Returns400(t *testing.T) {
	rec := serve(newHTTPHandler(&mockPromptServicer{}, nil, nil), httptest.NewRequest(http.MethodGet, "/prompts/abc", nil), nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_parameter", decodeError(t, rec).Code)
}

// ---- PATCH /prompts/{id} ---------------------------------------------------

func TestUpdatePrompt_200_PassesPatchThrough(t *testing.T) {
	var gotPatch domain.PromptPatch
	svc := &mockPromptServicer{
		update: func(_ context.Context, _ domain.User, id int64, patch domain.PromptPatch) (domain.Prompt, error) {
			gotPatch = patch
			p := promptFixture()
			p.ID = id
			p.Title = *patch.Title
			return p, nil
		},
	}

	req := jsonRequest(t, http.MethodPatch, "/prompts/7", map[string]any{
		"title":       "Renamed",
		"prompt_type": "Hybrid",
		"tags":        []string{},
		"change_note": "tightened wording",
	})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotPatch.Title)
	assert.Equal(t, "Renamed", *gotPatch.Title)
	require.NotNil(t, gotPatch.Type)
	assert.Equal(t, domain.PromptTypeHybrid, *gotPatch.Type)
	require.NotNil(t, gotPatch.Tags, "an explicit empty tag list is a change, not an absent field")
	assert.Empty(t, *gotPatch.Tags)
	assert.Nil(t, gotPatch.Description)
	assert.Nil(t, gotPatch.IsFeatured)
	assert.Equal(t, "tightened wording", gotPatch.ChangeNote)
}

func TestUpdatePrompt_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", fmt.Errorf("%w: only an admin may feature a prompt", domain.ErrForbidden), http.StatusForbidden, "forbidden"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"validation", fmt.Errorf("%w: unknown category_id 99", domain.ErrValidation), http.StatusUnprocessableEntity, "validation_error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockPromptServicer{
				update: func(context.Context, domain.User, int64, domain.PromptPatch) (domain.Prompt, error) {
					return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w", tc.err)
				},
			}

			req := jsonRequest(t, http.MethodPatch, "/prompts/7", map[string]any{"title": "x"})
			rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

			require.Equal(t, tc.wantCode, rec.Code)
			assert.Equal(t, tc.wantBody, decodeError(t, rec).Code)
		})
	}
}

func TestUpdatePrompt_ForbiddenMessage(t *testing.T) {
	svc := &mockPromptServicer{
		update: func(context.Context, domain.User, int64, domain.PromptPatch) (domain.Prompt, error) {
			return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w: only an admin may feature a prompt", domain.ErrForbidden)
		},
	}

	req := jsonRequest(t, http.MethodPatch, "/prompts/7", map[string]any{"is_featured": true})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "only an admin may feature a prompt", decodeError(t, rec).Message)
}

// ---- DELETE /prompts/{id} --------------------------------------------------

func TestDeletePrompt_204(t *testing.T) {
	var gotActor domain.User
	var gotID int64
	svc := &mockPromptServicer{
		delete: func(_ context.Context, a domain.User, id int64) error {
			gotActor, gotID = a, id
			return nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodDelete, "/prompts/4", nil), &admin)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, admin, gotActor)
	assert.Equal(t, int64(4), gotID)
	assert.Empty(t, rec.Body.String())
}

func TestDeletePrompt_NonAdmin_Returns403(t *testing.T) {
	svc := &mockPromptServicer{
		delete: func(context.Context, domain.User, int64) error {
			return fmt.Errorf("service.PromptService.Delete: %w: admin role required", domain.ErrForbidden)
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodDelete, "/prompts/4", nil), &wizard)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admin role required", decodeError(t, rec).Message)
}

func TestDeletePrompt_Anonymous_Returns401(t *testing.T) {
	svc := &mockPromptServicer{
		delete: func(context.Context, domain.User, int64) error {
			return fmt.Errorf("service.PromptService.Delete: %w", domain.ErrUnauthorized)
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodDelete, "/prompts/4", nil), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- POST /prompts/{id}/copy -----------------------------------------------

func TestCopyPrompt_ReturnsContentAndCount(t *testing.T) {
	svc := &mockPromptServicer{
		incrementCopy: func(context.Context, int64) (domain.Prompt, error) {
			p := promptFixture()
			p.CopyCount = 4
			return p, nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodPost, "/prompts/7/copy", nil), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.CopyResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, gen.CopyResult{Content: "You are a senior engineer.\n\nReview this diff.", CopyCount: 4}, resp)
}

func TestCopyPrompt_404(t *testing.T) {
	svc := &mockPromptServicer{
		incrementCopy: func(context.Context, int64) (domain.Prompt, error) {
			return domain.Prompt{}, domain.ErrNotFound
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodPost, "/prompts/7/copy", nil), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- POST /prompts/{id}/feature --------------------------------------------

func TestTogglePromptFeature(t *testing.T) {
	var called bool
	svc := &mockPromptServicer{
		toggleFeature: func(_ context.Context, a domain.User, id int64) error {
			called = true
			if !a.IsAdmin() {
				return domain.ErrForbidden
			}
			return nil
		},
	}
	h := newHTTPHandler(svc, nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/prompts/7/feature", nil), &admin)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)

	rec = serve(h, httptest.NewRequest(http.MethodPost, "/prompts/7/feature", nil), &wizard)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ---- POST /enhance ---------------------------------------------------------

func TestEnhancePrompt_200(t *testing.T) {
	svc := &mockPromptServicer{
		enhance: func(_ context.Context, _ domain.User, draft string) (string, error) {
			return "[SYSTEM GENERATED TEMPLATE] " + draft, nil
		},
	}

	req := jsonRequest(t, http.MethodPost, "/enhance", map[string]any{"draft": "write a haiku"})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.EnhanceResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "[SYSTEM GENERATED TEMPLATE] write a haiku", resp.SystemPrompt)
}

func TestEnhancePrompt_EmptyDraft_Returns422(t *testing.T) {
	svc := &mockPromptServicer{
		enhance: func(context.Context, domain.User, string) (string, error) {
			return "", fmt.Errorf("service.PromptService.Enhance: %w: draft is required", domain.ErrValidation)
		},
	}

	req := jsonRequest(t, http.MethodPost, "/enhance", map[string]any{"draft": "  "})
	rec := serve(newHTTPHandler(svc, nil, nil), req, &wizard)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "draft is required", decodeError(t, rec).Message)
}
