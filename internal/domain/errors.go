package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown prompt type, category that does not exist).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials is returned by login when no user matches the
// supplied identifier. Handlers should map this to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized is returned when an operation requires a signed-in user
// and the request carries no valid session. Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the signed-in user lacks the role or
// ownership an operation requires. Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrStorageUnavailable wraps failures to read, decode, encode or write the
// persisted snapshot.
var ErrStorageUnavailable = errors.New("storage unavailable")
