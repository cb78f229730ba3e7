// Package middleware provides reusable HTTP middleware for the prompt library API.
package middleware

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// corsMethods and corsHeaders cover every route in api/openapi.yaml. The
// browser client sends its session token in Authorization and reads the
// export file name from Content-Disposition.
var (
	corsMethods        = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	corsHeaders        = []string{"Content-Type", "Authorization"}
	corsExposedHeaders = []string{"Content-Disposition"}
)

// NewCORSHandler allows cross-origin calls from allowedOrigins, each a full
// origin or a single-wildcard pattern such as "https://*.example.com".
// Browsers may cache a preflight answer for maxAge; zero disables caching.
// Tokens travel in a header, not a cookie, so credentials stay disallowed.
func NewCORSHandler(allowedOrigins []string, maxAge time.Duration) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   corsMethods,
		AllowedHeaders:   corsHeaders,
		ExposedHeaders:   corsExposedHeaders,
		AllowCredentials: false,
		MaxAge:           int(maxAge / time.Second),
	})
	return c.Handler
}
