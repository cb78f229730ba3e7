package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pkordes/promptlib/backend/internal/domain"
)

// PromptsKey is the storage key holding the serialized prompt collection.
const PromptsKey = "db_prompts"

// SnapshotRepo persists the prompt collection as a single JSON array.
// There is no incremental write: every Save replaces the whole snapshot.
type SnapshotRepo interface {
	// Load reads and decodes the stored collection.
	// Returns domain.ErrNotFound if nothing has been stored yet, and an error
	// wrapping domain.ErrStorageUnavailable if the stored bytes do not decode.
	Load(ctx context.Context) ([]domain.Prompt, error)

	// Save encodes prompts and replaces the stored snapshot.
	Save(ctx context.Context, prompts []domain.Prompt) error
}

// kvSnapshotRepo is the KVStore-backed implementation of SnapshotRepo.
type kvSnapshotRepo struct {
	kv KVStore
}

// NewSnapshotRepo constructs a SnapshotRepo that stores the collection
// under PromptsKey in kv.
func NewSnapshotRepo(kv KVStore) SnapshotRepo {
	return &kvSnapshotRepo{kv: kv}
}

// Load returns the stored collection.
func (r *kvSnapshotRepo) Load(ctx context.Context) ([]domain.Prompt, error) {
	b, err := r.kv.Get(ctx, PromptsKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("repo.SnapshotRepo.Load: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.SnapshotRepo.Load: %w", err)
	}

	var prompts []domain.Prompt
	if err := json.Unmarshal(b, &prompts); err != nil {
		return nil, fmt.Errorf("repo.SnapshotRepo.Load: %w: %v", domain.ErrStorageUnavailable, err)
	}
	if prompts == nil {
		prompts = []domain.Prompt{}
	}
	return prompts, nil
}

// Save replaces the stored collection.
func (r *kvSnapshotRepo) Save(ctx context.Context, prompts []domain.Prompt) error {
	if prompts == nil {
		prompts = []domain.Prompt{}
	}
	b, err := json.Marshal(prompts)
	if err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: %w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := r.kv.Put(ctx, PromptsKey, b); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: %w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
