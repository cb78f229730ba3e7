package handler

import (
	"context"

	"github.com/pkordes/promptlib/backend/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// Without a storage check it always answers {"status":"ok"}. With one, a
// failing probe turns the answer into 503 {"status":"degraded"}.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.storage == nil {
		return gen.GetHealth200JSONResponse{Status: "ok"}, nil
	}
	if err := s.storage(ctx); err != nil {
		s.log.WarnContext(ctx, "health check: storage unavailable", "error", err)
		state := "unavailable"
		return gen.GetHealth503JSONResponse{Status: "degraded", Storage: &state}, nil
	}
	state := "ok"
	return gen.GetHealth200JSONResponse{Status: "ok", Storage: &state}, nil
}
