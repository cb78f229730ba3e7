// Package handler implements the HTTP handlers for the prompt library API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, prompt.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
	"github.com/pkordes/promptlib/backend/internal/middleware"
)

// PromptServicer defines the catalog operations the prompt handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the service layer.
type PromptServicer interface {
	Query(ctx context.Context, params domain.QueryParams) ([]domain.Prompt, error)
	ListAll(ctx context.Context, actor domain.User) ([]domain.Prompt, error)
	Stats(ctx context.Context, actor domain.User) (domain.Stats, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Tags(ctx context.Context) ([]domain.TagCount, error)
	SuggestTags(ctx context.Context, q string) ([]string, error)
	IncrementView(ctx context.Context, id int64) (domain.Prompt, error)
	IncrementCopy(ctx context.Context, id int64) (domain.Prompt, error)
	Create(ctx context.Context, actor domain.User, in domain.PromptInput) (domain.Prompt, error)
	Update(ctx context.Context, actor domain.User, id int64, patch domain.PromptPatch) (domain.Prompt, error)
	Delete(ctx context.Context, actor domain.User, id int64) error
	ToggleFeature(ctx context.Context, actor domain.User, id int64) error
	Enhance(ctx context.Context, actor domain.User, draft string) (string, error)
}

// AuthServicer defines the session operations the auth handlers depend on.
type AuthServicer interface {
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Logout(ctx context.Context, token string) error
}

// ExportServicer defines the export operation the admin handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context, actor domain.User) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via NewHTTPHandler.
type Server struct {
	prompts PromptServicer
	auth    AuthServicer
	export  ExportServicer
	log     *slog.Logger
	now     func() time.Time
	storage func(context.Context) error
}

// NewServer constructs the Server with all its dependencies.
func NewServer(prompts PromptServicer, auth AuthServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{prompts: prompts, auth: auth, export: export, log: log, now: time.Now}
}

// WithStorageCheck makes GET /healthz report the result of check.
func (s *Server) WithStorageCheck(check func(context.Context) error) *Server {
	s.storage = check
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
// check may be nil, in which case storage is not probed.
func NewHealthHandler(check func(context.Context) error) *Server {
	return NewServer(nil, nil, nil, nil).WithStorageCheck(check)
}

// NewHTTPHandler mounts srv on router through the generated strict handler.
// Malformed parameters and bodies are answered with the JSON error envelope
// instead of the generator's plain-text defaults. A nil router gets a fresh one.
func NewHTTPHandler(srv *Server, router chi.Router) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  srv.requestError,
		ResponseErrorHandlerFunc: srv.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: srv.paramError,
	})
}

// actor returns the signed-in user, or the zero (anonymous) User.
func actor(ctx context.Context) domain.User {
	u, _ := middleware.UserFromContext(ctx)
	return u
}
