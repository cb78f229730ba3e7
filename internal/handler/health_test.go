package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/promptlib/backend/internal/handler"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

func getHealth(t *testing.T, check func(context.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	h := gen.Handler(gen.NewStrictHandler(handler.NewHealthHandler(check), nil))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	return rec
}

func TestGetHealth_NoStorageCheck(t *testing.T) {
	rec := getHealth(t, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetHealth_StorageReachable(t *testing.T) {
	called := false
	rec := getHealth(t, func(context.Context) error {
		called = true
		return nil
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.JSONEq(t, `{"status":"ok","storage":"ok"}`, rec.Body.String())
}

func TestGetHealth_StorageUnavailable_Returns503(t *testing.T) {
	rec := getHealth(t, func(context.Context) error { return errors.New("dial tcp: refused") })

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","storage":"unavailable"}`, rec.Body.String())
}
