package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

// ---- helpers ---------------------------------------------------------------

// newExportHTTPHandler wires a Server with only the export service mock.
func newExportHTTPHandler(rows []domain.ExportRow, err error) http.Handler {
	return newHTTPHandler(nil, nil, &mockExportServicer{
		export: func(context.Context, domain.User) ([]domain.ExportRow, error) { return rows, err },
	})
}

// exportRowFixture returns a fully-populated domain.ExportRow for testing.
func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		ID:           3,
		Title:        "Pacific Coast Travel Planner",
		Type:         domain.PromptTypeText,
		CategorySlug: "travel",
		AuthorName:   "admin",
		IsPublished:  true,
		IsFeatured:   true,
		ViewCount:    120,
		CopyCount:    14,
		Versions:     2,
		CreatedAt:    time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2024, 6, 18, 10, 0, 0, 0, time.UTC),
		Tags:         []string{"travel", "planning"},
	}
}

func getExport(h http.Handler, query string) *httptest.ResponseRecorder {
	return serve(h, httptest.NewRequest(http.MethodGet, "/admin/export"+query, nil), &admin)
}

// ---- GET /admin/export: JSON -----------------------------------------------

func TestGetAdminExport_DefaultJSON_EmptyResult(t *testing.T) {
	rec := getExport(newExportHTTPHandler([]domain.ExportRow{}, nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Regexp(t, `^attachment; filename="prompts-\d{4}-\d{2}-\d{2}\.json"$`, rec.Header().Get("Content-Disposition"))

	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	assert.Empty(t, rows)
}

func TestGetAdminExport_FormatJSON_ExplicitParam(t *testing.T) {
	row := exportRowFixture()

	rec := getExport(newExportHTTPHandler([]domain.ExportRow{row}, nil), "?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, row.Title, rows[0].Title)
	assert.Equal(t, "travel", rows[0].CategorySlug)
	assert.Equal(t, 2, rows[0].Versions)
	assert.True(t, row.CreatedAt.Equal(rows[0].CreatedAt))
}

func TestGetAdminExport_JSON_NilTagsBecomeEmptyArray(t *testing.T) {
	row := exportRowFixture()
	row.Tags = nil
	row.CategorySlug = ""

	rec := getExport(newExportHTTPHandler([]domain.ExportRow{row}, nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tags":[]`)
	assert.Contains(t, rec.Body.String(), `"category_slug":""`)
}

// ---- GET /admin/export: CSV ------------------------------------------------

func TestGetAdminExport_CSV_FormatParam_Headers(t *testing.T) {
	rec := getExport(newExportHTTPHandler([]domain.ExportRow{}, nil), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
}

func TestGetAdminExport_CSV_EmptyResult_HasHeaderRow(t *testing.T) {
	rec := getExport(newExportHTTPHandler([]domain.ExportRow{}, nil), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "id,title,"), "CSV should start with header row, got: %q", body)
}

func TestGetAdminExport_CSV_OneRow(t *testing.T) {
	row := exportRowFixture()

	rec := getExport(newExportHTTPHandler([]domain.ExportRow{row}, nil), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	// Header + 1 data row.
	require.Len(t, lines, 2)
	assert.Equal(t, "id,title,prompt_type,category,author,is_published,is_featured,view_count,copy_count,versions,created_at,updated_at,tags", lines[0])
	assert.Equal(t, "3,Pacific Coast Travel Planner,Text,travel,admin,true,true,120,14,2,2024-06-15T12:00:00Z,2024-06-18T10:00:00Z,travel|planning", lines[1])
}

func TestGetAdminExport_CSV_QuotesCommas(t *testing.T) {
	row := exportRowFixture()
	row.Title = "Plan, then pack"

	rec := getExport(newExportHTTPHandler([]domain.ExportRow{row}, nil), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Plan, then pack"`)
}

func TestGetAdminExport_UnknownFormat_FallsBackToJSON(t *testing.T) {
	rec := getExport(newExportHTTPHandler(nil, nil), "?format=xml")

	// The enum is not enforced by the binder, so unknown formats fall back to JSON.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

// ---- error handling --------------------------------------------------------

func TestGetAdminExport_ServiceError_Returns500(t *testing.T) {
	rec := getExport(newExportHTTPHandler(nil, fmt.Errorf("database unavailable")), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec).Code)
}
