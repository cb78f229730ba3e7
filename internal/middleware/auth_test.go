package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/middleware"
)

// mockAuthenticator is a hand-written test double for middleware.Authenticator.
type mockAuthenticator struct {
	authenticate func(ctx context.Context, token string) (domain.User, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (domain.User, error) {
	return m.authenticate(ctx, token)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// whoAmI echoes the username in context, or "anonymous".
var whoAmI = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		_, _ = io.WriteString(w, "anonymous")
		return
	}
	tok, _ := middleware.TokenFromContext(r.Context())
	_, _ = io.WriteString(w, u.Username+":"+tok)
})

func serveWithAuth(t *testing.T, auth middleware.Authenticator, header string) *httptest.ResponseRecorder {
	t.Helper()
	h := middleware.NewAuthenticator(auth, discard)(whoAmI)
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticator_ValidToken(t *testing.T) {
	auth := &mockAuthenticator{
		authenticate: func(_ context.Context, token string) (domain.User, error) {
			require.Equal(t, "good", token)
			return domain.User{ID: 1, Username: "admin"}, nil
		},
	}

	rec := serveWithAuth(t, auth, "bearer  good ")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin:good", rec.Body.String())
}

func TestAuthenticator_NoHeaderIsAnonymous(t *testing.T) {
	auth := &mockAuthenticator{
		authenticate: func(context.Context, string) (domain.User, error) {
			t.Fatal("must not be called without a token")
			return domain.User{}, nil
		},
	}

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer   "} {
		rec := serveWithAuth(t, auth, header)
		assert.Equal(t, "anonymous", rec.Body.String(), header)
	}
}

func TestAuthenticator_InvalidTokenIsAnonymous(t *testing.T) {
	auth := &mockAuthenticator{
		authenticate: func(context.Context, string) (domain.User, error) {
			return domain.User{}, domain.ErrUnauthorized
		},
	}

	rec := serveWithAuth(t, auth, "Bearer expired")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestAuthenticator_StoreFailureIs503(t *testing.T) {
	auth := &mockAuthenticator{
		authenticate: func(context.Context, string) (domain.User, error) {
			return domain.User{}, errors.Join(domain.ErrStorageUnavailable, errors.New("redis down"))
		},
	}

	rec := serveWithAuth(t, auth, "Bearer tok")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"storage_unavailable","message":"session store unavailable"}}`, rec.Body.String())
}
