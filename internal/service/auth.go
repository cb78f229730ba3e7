package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/repo"
)

// sessionClaims are the claims carried by a session token.
// Subject is the user id; SessionID names the session marker.
type sessionClaims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService signs users in and out.
//
// A login issues an HS256 token and writes a session marker holding the user.
// A token is honoured only while its marker exists, so logout takes effect
// immediately even though the token itself has not expired.
type AuthService struct {
	users    []domain.User
	sessions repo.SessionRepo
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithAuthClock overrides time.Now for token issue and expiry checks.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// NewAuthService constructs an AuthService over the known users.
// secret must not be empty.
func NewAuthService(users []domain.User, sessions repo.SessionRepo, secret string, ttl time.Duration, opts ...AuthOption) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("service.NewAuthService: jwt secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("service.NewAuthService: session ttl must be positive, got %s", ttl)
	}
	s := &AuthService{
		users:    slices.Clone(users),
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Login signs in the user whose email matches exactly after trimming.
// The password is accepted and not checked.
func (s *AuthService) Login(ctx context.Context, email, _ string) (string, domain.User, error) {
	email = strings.TrimSpace(email)
	i := slices.IndexFunc(s.users, func(u domain.User) bool { return u.Email == email })
	if email == "" || i < 0 {
		return "", domain.User{}, fmt.Errorf("service.AuthService.Login: %w", domain.ErrInvalidCredentials)
	}
	user := s.users[i]

	sid := uuid.NewString()
	now := s.now()
	claims := sessionClaims{
		SessionID: sid,
		Role:      string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("service.AuthService.Login: sign token: %w", err)
	}

	if err := s.sessions.Put(ctx, sid, user); err != nil {
		return "", domain.User{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return token, user, nil
}

// Authenticate resolves token to the signed-in user.
// Returns domain.ErrUnauthorized for a malformed, expired or logged-out token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	user, err := s.sessions.Get(ctx, claims.SessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w: session ended", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	if strconv.FormatInt(user.ID, 10) != claims.Subject {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w: subject mismatch", domain.ErrUnauthorized)
	}
	return user, nil
}

// Logout clears the session behind token. Logging out an ended session is
// not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}

func (s *AuthService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.SessionID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: incomplete claims", domain.ErrUnauthorized)
	}
	return claims, nil
}
