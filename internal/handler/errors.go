package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "prompt not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody("not_found", message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody("validation_error", detail(err, domain.ErrValidation))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody("validation_error", message)
}

func unauthorizedBody() gen.ErrorResponse {
	return errorBody("unauthorized", "sign in required")
}

func forbiddenBody(err error) gen.ErrorResponse {
	return errorBody("forbidden", detail(err, domain.ErrForbidden))
}

// detail extracts the human-readable part that follows sentinel in a
// wrapped error chain.
// e.g. "service.PromptService.Create: validation error: title must be at most 200 characters"
// → "title must be at most 200 characters"
func detail(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}

// writeError writes the JSON error envelope outside the strict handler,
// where no typed response object exists.
func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// paramError handles path and query parameters the generated router could
// not bind, such as a non-numeric prompt id.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, http.StatusBadRequest, errorBody("invalid_parameter", err.Error()))
}

// requestError handles request bodies the strict handler could not decode.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "request body too large"))
		return
	}
	writeError(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

// responseError handles errors returned by handlers that have no typed
// response of their own. Storage failures and timeouts become 503; anything
// else is logged and hidden behind a generic 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		s.log.ErrorContext(r.Context(), "storage unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, errorBody("storage_unavailable", "storage unavailable"))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		s.log.WarnContext(r.Context(), "request did not complete", "error", err)
		writeError(w, http.StatusServiceUnavailable, errorBody("timeout", "request did not complete"))
	default:
		s.log.ErrorContext(r.Context(), "unhandled handler error", "error", err)
		writeError(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}
