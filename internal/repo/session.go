package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// sessionKeyPrefix namespaces session markers. Each signed-in session has
// its own marker holding the serialized user.
const sessionKeyPrefix = "auth_user:"

// SessionRepo stores session markers: one serialized User per session id,
// written on login and cleared on logout.
type SessionRepo interface {
	// Put writes the marker for sessionID.
	Put(ctx context.Context, sessionID string, user domain.User) error

	// Get returns the user recorded for sessionID.
	// Returns domain.ErrNotFound if the session was never written or was cleared.
	Get(ctx context.Context, sessionID string) (domain.User, error)

	// Delete clears the marker for sessionID. Idempotent.
	Delete(ctx context.Context, sessionID string) error
}

type kvSessionRepo struct {
	kv KVStore
}

// NewSessionRepo constructs a SessionRepo backed by kv.
func NewSessionRepo(kv KVStore) SessionRepo {
	return &kvSessionRepo{kv: kv}
}

func (r *kvSessionRepo) Put(ctx context.Context, sessionID string, user domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("repo.SessionRepo.Put: %w", err)
	}
	if err := r.kv.Put(ctx, sessionKeyPrefix+sessionID, b); err != nil {
		return fmt.Errorf("repo.SessionRepo.Put: %w", err)
	}
	return nil
}

func (r *kvSessionRepo) Get(ctx context.Context, sessionID string) (domain.User, error) {
	b, err := r.kv.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.SessionRepo.Get: %w", err)
	}
	var u domain.User
	if err := json.Unmarshal(b, &u); err != nil {
		return domain.User{}, fmt.Errorf("repo.SessionRepo.Get: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return u, nil
}

func (r *kvSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if err := r.kv.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", err)
	}
	return nil
}
