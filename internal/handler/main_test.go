package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
	"github.com/pkordes/promptlib/backend/internal/middleware"
)

// mockPromptServicer is a test double for handler.PromptServicer.
// Set only the method fields your test needs.
type mockPromptServicer struct {
	query         func(ctx context.Context, params domain.QueryParams) ([]domain.Prompt, error)
	listAll       func(ctx context.Context, actor domain.User) ([]domain.Prompt, error)
	stats         func(ctx context.Context, actor domain.User) (domain.Stats, error)
	categories    func(ctx context.Context) ([]domain.Category, error)
	tags          func(ctx context.Context) ([]domain.TagCount, error)
	suggestTags   func(ctx context.Context, q string) ([]string, error)
	incrementView func(ctx context.Context, id int64) (domain.Prompt, error)
	incrementCopy func(ctx context.Context, id int64) (domain.Prompt, error)
	create        func(ctx context.Context, actor domain.User, in domain.PromptInput) (domain.Prompt, error)
	update        func(ctx context.Context, actor domain.User, id int64, patch domain.PromptPatch) (domain.Prompt, error)
	delete        func(ctx context.Context, actor domain.User, id int64) error
	toggleFeature func(ctx context.Context, actor domain.User, id int64) error
	enhance       func(ctx context.Context, actor domain.User, draft string) (string, error)
}

func (m *mockPromptServicer) Query(ctx context.Context, p domain.QueryParams) ([]domain.Prompt, error) {
	return m.query(ctx, p)
}
func (m *mockPromptServicer) ListAll(ctx context.Context, a domain.User) ([]domain.Prompt, error) {
	return m.listAll(ctx, a)
}
func (m *mockPromptServicer) Stats(ctx context.Context, a domain.User) (domain.Stats, error) {
	return m.stats(ctx, a)
}
func (m *mockPromptServicer) Categories(ctx context.Context) ([]domain.Category, error) {
	return m.categories(ctx)
}
func (m *mockPromptServicer) Tags(ctx context.Context) ([]domain.TagCount, error) {
	return m.tags(ctx)
}
func (m *mockPromptServicer) SuggestTags(ctx context.Context, q string) ([]string, error) {
	return m.suggestTags(ctx, q)
}
func (m *mockPromptServicer) IncrementView(ctx context.Context, id int64) (domain.Prompt, error) {
	return m.incrementView(ctx, id)
}
func (m *mockPromptServicer) IncrementCopy(ctx context.Context, id int64) (domain.Prompt, error) {
	return m.incrementCopy(ctx, id)
}
func (m *mockPromptServicer) Create(ctx context.Context, a domain.User, in domain.PromptInput) (domain.Prompt, error) {
	return m.create(ctx, a, in)
}
func (m *mockPromptServicer) Update(ctx context.Context, a domain.User, id int64, p domain.PromptPatch) (domain.Prompt, error) {
	return m.update(ctx, a, id, p)
}
func (m *mockPromptServicer) Delete(ctx context.Context, a domain.User, id int64) error {
	return m.delete(ctx, a, id)
}
func (m *mockPromptServicer) ToggleFeature(ctx context.Context, a domain.User, id int64) error {
	return m.toggleFeature(ctx, a, id)
}
func (m *mockPromptServicer) Enhance(ctx context.Context, a domain.User, draft string) (string, error) {
	return m.enhance(ctx, a, draft)
}

// compile-time check: mockPromptServicer must satisfy handler.PromptServicer.
var _ handler.PromptServicer = (*mockPromptServicer)(nil)

// mockAuthServicer is a test double for handler.AuthServicer.
type mockAuthServicer struct {
	login  func(ctx context.Context, email, password string) (string, domain.User, error)
	logout func(ctx context.Context, token string) error
}

func (m *mockAuthServicer) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	return m.login(ctx, email, password)
}
func (m *mockAuthServicer) Logout(ctx context.Context, token string) error {
	return m.logout(ctx, token)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context, actor domain.User) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, a domain.User) ([]domain.ExportRow, error) {
	return m.export(ctx, a)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

var (
	admin  = domain.User{ID: 1, Username: "admin", Email: "admin@promptlib.com", Role: domain.RoleAdmin}
	wizard = domain.User{ID: 2, Username: "PromptWizard", Email: "wizard@promptlib.com", Role: domain.RoleUser}
)

var fixedTime = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

// newHTTPHandler wires a Server with the given mocks into the generated chi
// router. This mirrors how main.go wires it in production.
func newHTTPHandler(prompts handler.PromptServicer, auth handler.AuthServicer, export handler.ExportServicer) http.Handler {
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := handler.NewServer(prompts, auth, export, log)
	return handler.NewHTTPHandler(srv, nil)
}

// serve sends req through h. When as is non-nil the request carries that
// user, as the authentication middleware would have set it.
func serve(h http.Handler, req *http.Request, as *domain.User) *httptest.ResponseRecorder {
	if as != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), *as, "token-"+as.Username))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func jsonRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, jsonBody(t, v))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func promptFixture() domain.Prompt {
	return domain.Prompt{
		ID:           7,
		Title:        "Code Reviewer",
		Description:  "Reviews a diff",
		SystemPrompt: "You are a senior engineer.",
		UserPrompt:   "Review this diff.",
		Type:         domain.PromptTypeCode,
		Language:     "en",
		CategoryID:   2,
		AuthorID:     2,
		AuthorName:   "PromptWizard",
		IsPublished:  true,
		ViewCount:    10,
		CopyCount:    3,
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
		Tags:         []string{"review", "go"},
	}
}
