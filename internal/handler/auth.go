package handler

import (
	"context"
	"errors"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/handler/gen"
	"github.com/pkordes/promptlib/backend/internal/middleware"
)

// Login handles POST /auth/login.
func (s *Server) Login(ctx context.Context, req gen.LoginRequestObject) (gen.LoginResponseObject, error) {
	if req.Body == nil {
		return gen.Login401JSONResponse(errorBody("invalid_credentials", "email is required")), nil
	}
	var password string
	if req.Body.Password != nil {
		password = *req.Body.Password
	}

	token, user, err := s.auth.Login(ctx, req.Body.Email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return gen.Login401JSONResponse(errorBody("invalid_credentials", "no user with that email")), nil
		}
		return nil, err
	}

	return gen.Login200JSONResponse{Token: token, User: userToResponse(user)}, nil
}

// Logout handles POST /auth/logout.
// Logging out without a session, or with one that already ended, succeeds.
func (s *Server) Logout(ctx context.Context, _ gen.LogoutRequestObject) (gen.LogoutResponseObject, error) {
	token, ok := middleware.TokenFromContext(ctx)
	if !ok {
		return gen.Logout204Response{}, nil
	}
	if err := s.auth.Logout(ctx, token); err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		return nil, err
	}
	return gen.Logout204Response{}, nil
}

// GetMe handles GET /auth/me.
func (s *Server) GetMe(ctx context.Context, _ gen.GetMeRequestObject) (gen.GetMeResponseObject, error) {
	user := actor(ctx)
	if user.IsAnonymous() {
		return gen.GetMe401JSONResponse(unauthorizedBody()), nil
	}
	return gen.GetMe200JSONResponse(userToResponse(user)), nil
}

func userToResponse(u domain.User) gen.User {
	return gen.User{
		Id:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     gen.UserRole(u.Role),
	}
}
