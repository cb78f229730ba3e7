package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// Authenticator resolves a session token to its user.
// It returns domain.ErrUnauthorized for tokens that are not (or no longer) valid.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

type userKey struct{}

type tokenKey struct{}

// WithUser stores the signed-in user and their token in ctx.
func WithUser(ctx context.Context, u domain.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey{}, u)
	return context.WithValue(ctx, tokenKey{}, token)
}

// UserFromContext returns the signed-in user, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(domain.User)
	return u, ok
}

// TokenFromContext returns the session token of the signed-in user, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey{}).(string)
	return t, ok
}

// NewAuthenticator returns a middleware that resolves an optional
// "Authorization: Bearer <token>" header. A valid token puts its user in the
// request context; a missing or invalid one leaves the request anonymous and
// the handlers decide whether that is acceptable. A failure to look up the
// session is answered with 503.
func NewAuthenticator(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			switch {
			case err == nil:
				r = r.WithContext(WithUser(r.Context(), user, token))
			case errors.Is(err, domain.ErrUnauthorized):
				log.DebugContext(r.Context(), "ignoring invalid session token", "error", err)
			default:
				log.ErrorContext(r.Context(), "session lookup failed", "error", err)
				writeError(w, http.StatusServiceUnavailable, "storage_unavailable", "session store unavailable")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
