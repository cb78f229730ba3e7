package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

func TestAdminListPrompts_IncludesDrafts(t *testing.T) {
	draft := promptFixture()
	draft.ID = 8
	draft.IsPublished = false
	svc := &mockPromptServicer{
		listAll: func(_ context.Context, a domain.User) ([]domain.Prompt, error) {
			assert.Equal(t, admin, a)
			return []domain.Prompt{promptFixture(), draft}, nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodGet, "/admin/prompts", nil), &admin)

	require.Equal(t, http.StatusOK, rec.Code)
	var prompts []gen.Prompt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&prompts))
	require.Len(t, prompts, 2)
	assert.False(t, prompts[1].IsPublished)
}

func TestAdminEndpoints_RoleErrors(t *testing.T) {
	forbidden := fmt.Errorf("service: %w: admin role required", domain.ErrForbidden)
	unauthorized := fmt.Errorf("service: %w", domain.ErrUnauthorized)
	roleErr := func(a domain.User) error {
		if a.IsAnonymous() {
			return unauthorized
		}
		return forbidden
	}
	prompts := &mockPromptServicer{
		listAll: func(_ context.Context, a domain.User) ([]domain.Prompt, error) { return nil, roleErr(a) },
		stats:   func(_ context.Context, a domain.User) (domain.Stats, error) { return domain.Stats{}, roleErr(a) },
	}
	export := &mockExportServicer{
		export: func(_ context.Context, a domain.User) ([]domain.ExportRow, error) { return nil, roleErr(a) },
	}
	h := newHTTPHandler(prompts, nil, export)

	for _, path := range []string{"/admin/prompts", "/admin/stats", "/admin/export"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil), &wizard)
			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "forbidden", decodeError(t, rec).Code)

			rec = serve(h, httptest.NewRequest(http.MethodGet, path, nil), nil)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", decodeError(t, rec).Code)
		})
	}
}

func TestGetAdminStats(t *testing.T) {
	svc := &mockPromptServicer{
		stats: func(context.Context, domain.User) (domain.Stats, error) {
			return domain.Stats{TotalPrompts: 6, PublishedPrompts: 5, FeaturedPrompts: 2, TotalViews: 1200, TotalCopies: 340}, nil
		},
	}

	rec := serve(newHTTPHandler(svc, nil, nil), httptest.NewRequest(http.MethodGet, "/admin/stats", nil), &admin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_prompts": 6,
		"published_prompts": 5,
		"featured_prompts": 2,
		"total_views": 1200,
		"total_copies": 340
	}`, rec.Body.String())
}
