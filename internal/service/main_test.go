package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/repo"
	"github.com/pkordes/promptlib/backend/internal/seed"
	"github.com/pkordes/promptlib/backend/internal/service"
)

// TestMain fails the package if any test leaves a goroutine behind
// (latency timers, concurrent mutation tests).
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ---- mocks -----------------------------------------------------------------

// mockSnapshotRepo is a hand-written test double for repo.SnapshotRepo.
// Each method is a function field; set only the ones your test needs.
type mockSnapshotRepo struct {
	load func(ctx context.Context) ([]domain.Prompt, error)
	save func(ctx context.Context, prompts []domain.Prompt) error
}

func (m *mockSnapshotRepo) Load(ctx context.Context) ([]domain.Prompt, error) {
	return m.load(ctx)
}
func (m *mockSnapshotRepo) Save(ctx context.Context, prompts []domain.Prompt) error {
	return m.save(ctx, prompts)
}

// compile-time check: mockSnapshotRepo must satisfy repo.SnapshotRepo.
var _ repo.SnapshotRepo = (*mockSnapshotRepo)(nil)

// ---- helpers ---------------------------------------------------------------

var seedTime = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

var (
	admin  = domain.User{ID: 1, Username: "admin", Email: "admin@promptlib.com", Role: domain.RoleAdmin}
	wizard = domain.User{ID: 2, Username: "prompt_wizard", Email: "wizard@promptlib.com", Role: domain.RoleUser}
	nobody = domain.User{}
)

// clock returns a time source that starts one hour after seedTime and
// advances one second per call, so successive mutations get distinct stamps.
func clock() func() time.Time {
	t := seedTime.Add(time.Hour)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func dataset(t *testing.T) seed.Dataset {
	t.Helper()
	ds, err := seed.Default(seedTime)
	require.NoError(t, err)
	return ds
}

// newStore builds a PromptService over an in-memory snapshot repo seeded
// with the built-in dataset. The repo is returned so tests can inspect what
// was persisted.
func newStore(t *testing.T, opts ...service.PromptOption) (*service.PromptService, repo.SnapshotRepo) {
	t.Helper()
	snaps := repo.NewSnapshotRepo(repo.NewMemoryKV())
	opts = append([]service.PromptOption{service.WithClock(clock())}, opts...)
	svc, err := service.NewPromptService(context.Background(), snaps, dataset(t), opts...)
	require.NoError(t, err)
	return svc, snaps
}

func persisted(t *testing.T, snaps repo.SnapshotRepo, id int64) domain.Prompt {
	t.Helper()
	all, err := snaps.Load(context.Background())
	require.NoError(t, err)
	for _, p := range all {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("prompt %d not persisted", id)
	return domain.Prompt{}
}

func ptr[T any](v T) *T { return &v }
