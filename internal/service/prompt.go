// Package service contains the business logic for the prompt library API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage code lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pkordes/promptlib/backend/internal/domain"
	"github.com/pkordes/promptlib/backend/internal/metrics"
	"github.com/pkordes/promptlib/backend/internal/query"
	"github.com/pkordes/promptlib/backend/internal/repo"
	"github.com/pkordes/promptlib/backend/internal/seed"
)

const (
	defaultTitle      = "Untitled"
	defaultCategoryID = 1
	defaultLanguage   = "en"
)

// PromptService owns the authoritative prompt collection.
//
// The collection lives in memory and is written back to the SnapshotRepo as
// a whole after every mutation. One mutex guards both the collection and the
// snapshot write, so persisted snapshots are always applied in mutation order.
// Everything returned to callers is a copy.
type PromptService struct {
	mu      sync.Mutex
	prompts []domain.Prompt

	categories []domain.Category
	snapshots  repo.SnapshotRepo
	enhancer   Enhancer
	log        *slog.Logger
	now        func() time.Time
	latency    time.Duration
}

// PromptOption configures a PromptService.
type PromptOption func(*PromptService)

// WithEnhancer sets the Enhancer used by Create and Enhance.
// The default is TemplateEnhancer.
func WithEnhancer(e Enhancer) PromptOption {
	return func(s *PromptService) { s.enhancer = e }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) PromptOption {
	return func(s *PromptService) { s.log = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) PromptOption {
	return func(s *PromptService) { s.now = now }
}

// WithLatency makes every operation wait d before touching the collection.
// The wait ends early if the caller's context is done.
func WithLatency(d time.Duration) PromptOption {
	return func(s *PromptService) { s.latency = d }
}

// NewPromptService loads the persisted collection from snapshots.
//
// When nothing has been persisted yet, the seed prompts are used and written
// back immediately. When the stored snapshot cannot be decoded, the seed is
// used in memory only and the stored payload stays as it is until the next
// mutation overwrites it. Any other read error is returned.
func NewPromptService(ctx context.Context, snapshots repo.SnapshotRepo, ds seed.Dataset, opts ...PromptOption) (*PromptService, error) {
	s := &PromptService{
		categories: slices.Clone(ds.Categories),
		snapshots:  snapshots,
		enhancer:   TemplateEnhancer{},
		log:        slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := snapshots.Load(ctx)
	switch {
	case err == nil:
		s.prompts = loaded
	case errors.Is(err, domain.ErrNotFound):
		s.log.InfoContext(ctx, "no stored prompts, seeding", "count", len(ds.Prompts))
		s.prompts = clonePrompts(ds.Prompts)
		if err := snapshots.Save(ctx, s.prompts); err != nil {
			metrics.RecordSnapshotWrite(false)
			s.log.WarnContext(ctx, "persisting seed failed", "error", err)
		} else {
			metrics.RecordSnapshotWrite(true)
		}
	case errors.Is(err, domain.ErrStorageUnavailable):
		s.log.WarnContext(ctx, "stored prompts unreadable, using seed", "error", err)
		s.prompts = clonePrompts(ds.Prompts)
	default:
		return nil, fmt.Errorf("service.NewPromptService: %w", err)
	}
	return s, nil
}

// Query returns the published prompts matching params, in the order params
// asks for. It never fails except when ctx ends during simulated latency.
func (s *PromptService) Query(ctx context.Context, params domain.QueryParams) ([]domain.Prompt, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("service.PromptService.Query: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePrompts(query.Apply(s.prompts, params)), nil
}

// ListAll returns every prompt, drafts included, in collection order.
// Admin only.
func (s *PromptService) ListAll(ctx context.Context, actor domain.User) ([]domain.Prompt, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, fmt.Errorf("service.PromptService.ListAll: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("service.PromptService.ListAll: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePrompts(s.prompts), nil
}

// Stats summarizes the whole collection. Admin only.
func (s *PromptService) Stats(ctx context.Context, actor domain.User) (domain.Stats, error) {
	if err := requireAdmin(actor); err != nil {
		return domain.Stats{}, fmt.Errorf("service.PromptService.Stats: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return domain.Stats{}, fmt.Errorf("service.PromptService.Stats: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.Summarize(s.prompts), nil
}

// Categories returns the static category list.
func (s *PromptService) Categories(ctx context.Context) ([]domain.Category, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("service.PromptService.Categories: %w", err)
	}
	return slices.Clone(s.categories), nil
}

// Tags returns the distinct tags of published prompts with usage counts.
func (s *PromptService) Tags(ctx context.Context) ([]domain.TagCount, error) {
	if err := s.wait(ctx); err != nil {
		return nil, fmt.Errorf("service.PromptService.Tags: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return query.Tags(s.prompts), nil
}

// SuggestTags returns up to three published tags related to q.
func (s *PromptService) SuggestTags(ctx context.Context, q string) ([]string, error) {
	counts, err := s.Tags(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Name
	}
	return query.SuggestTags(q, names), nil
}

// IncrementView records one view of prompt id and returns the updated prompt.
// Only the view counter changes; updated_at is left alone.
func (s *PromptService) IncrementView(ctx context.Context, id int64) (domain.Prompt, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.IncrementView: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.IncrementView: %w", domain.ErrNotFound)
	}
	s.prompts[i].ViewCount++
	metrics.PromptViewsTotal.Inc()
	s.persistLocked(ctx, "view")
	return s.prompts[i].Clone(), nil
}

// IncrementCopy records one copy of prompt id and returns the updated prompt.
func (s *PromptService) IncrementCopy(ctx context.Context, id int64) (domain.Prompt, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.IncrementCopy: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.IncrementCopy: %w", domain.ErrNotFound)
	}
	s.prompts[i].CopyCount++
	metrics.PromptCopiesTotal.Inc()
	s.persistLocked(ctx, "copy")
	return s.prompts[i].Clone(), nil
}

// Create validates in, fills defaults and appends a new published prompt
// authored by actor.
func (s *PromptService) Create(ctx context.Context, actor domain.User, in domain.PromptInput) (domain.Prompt, error) {
	if actor.IsAnonymous() {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Create: %w", domain.ErrUnauthorized)
	}
	in.Tags = normalizeTags(in.Tags)
	if err := validateStruct(in); err != nil {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Create: %w", err)
	}
	if in.CategoryID == 0 {
		in.CategoryID = defaultCategoryID
	}
	if !s.hasCategory(in.CategoryID) {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Create: %w: unknown category_id %d", domain.ErrValidation, in.CategoryID)
	}
	if in.Type == "" {
		in.Type = domain.PromptTypeText
	}
	if strings.TrimSpace(in.Title) == "" {
		in.Title = defaultTitle
	}
	if in.Enhance && strings.TrimSpace(in.UserPrompt) != "" && in.SystemPrompt == "" {
		// Enhancement is best effort; the prompt is created either way.
		if out, err := s.enhancer.Enhance(ctx, in.UserPrompt); err != nil {
			s.log.WarnContext(ctx, "enhance failed, creating without system prompt", "error", err)
		} else {
			in.SystemPrompt = out
		}
	}

	if err := s.wait(ctx); err != nil {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Create: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	p := domain.Prompt{
		ID:           s.nextIDLocked(),
		Title:        in.Title,
		Description:  in.Description,
		PromptText:   in.PromptText,
		SystemPrompt: in.SystemPrompt,
		UserPrompt:   in.UserPrompt,
		Type:         in.Type,
		Language:     defaultLanguage,
		CategoryID:   in.CategoryID,
		AuthorID:     actor.ID,
		AuthorName:   actor.Username,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Tags:         in.Tags,
		Versions:     []domain.PromptVersion{},
	}
	s.prompts = append(s.prompts, p)
	metrics.RecordMutation("create")
	s.persistLocked(ctx, "create")
	return p.Clone(), nil
}

// Update applies the fields present in patch to prompt id and appends a
// version record holding the resulting content. Only an admin or the
// prompt's author may update it, and only an admin may change featuring.
func (s *PromptService) Update(ctx context.Context, actor domain.User, id int64, patch domain.PromptPatch) (domain.Prompt, error) {
	if actor.IsAnonymous() {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w", domain.ErrUnauthorized)
	}
	if patch.Tags != nil {
		tags := normalizeTags(*patch.Tags)
		patch.Tags = &tags
	}
	if err := validateStruct(patch); err != nil {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w", err)
	}
	if patch.CategoryID != nil && !s.hasCategory(*patch.CategoryID) {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w: unknown category_id %d", domain.ErrValidation, *patch.CategoryID)
	}

	if err := s.wait(ctx); err != nil {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w", domain.ErrNotFound)
	}
	p := &s.prompts[i]
	if !actor.IsAdmin() && (p.AuthorID != actor.ID || patch.IsFeatured != nil) {
		return domain.Prompt{}, fmt.Errorf("service.PromptService.Update: %w", domain.ErrForbidden)
	}

	applyPatch(p, patch)
	now := s.now().UTC()
	p.UpdatedAt = now
	note := strings.TrimSpace(patch.ChangeNote)
	if note == "" {
		note = domain.DefaultChangeNote
	}
	n := len(p.Versions) + 1
	p.Versions = append(p.Versions, domain.PromptVersion{
		ID:            int64(n),
		VersionNumber: n,
		PromptText:    p.Content(),
		ChangeNote:    note,
		CreatedAt:     now,
	})
	metrics.RecordMutation("update")
	s.persistLocked(ctx, "update")
	return p.Clone(), nil
}

// Delete removes prompt id. Deleting a missing prompt is not an error.
// Admin only.
func (s *PromptService) Delete(ctx context.Context, actor domain.User, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return fmt.Errorf("service.PromptService.Delete: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("service.PromptService.Delete: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = slices.DeleteFunc(s.prompts, func(p domain.Prompt) bool { return p.ID == id })
	metrics.RecordMutation("delete")
	s.persistLocked(ctx, "delete")
	return nil
}

// ToggleFeature flips the featured flag of prompt id. A missing prompt is
// left alone and nothing is written. Admin only.
func (s *PromptService) ToggleFeature(ctx context.Context, actor domain.User, id int64) error {
	if err := requireAdmin(actor); err != nil {
		return fmt.Errorf("service.PromptService.ToggleFeature: %w", err)
	}
	if err := s.wait(ctx); err != nil {
		return fmt.Errorf("service.PromptService.ToggleFeature: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	s.prompts[i].IsFeatured = !s.prompts[i].IsFeatured
	metrics.RecordMutation("feature")
	s.persistLocked(ctx, "feature")
	return nil
}

// Enhance runs the configured Enhancer on draft for a signed-in user.
func (s *PromptService) Enhance(ctx context.Context, actor domain.User, draft string) (string, error) {
	if actor.IsAnonymous() {
		return "", fmt.Errorf("service.PromptService.Enhance: %w", domain.ErrUnauthorized)
	}
	if strings.TrimSpace(draft) == "" {
		return "", fmt.Errorf("service.PromptService.Enhance: %w: draft is required", domain.ErrValidation)
	}
	out, err := s.enhancer.Enhance(ctx, draft)
	if err != nil {
		return "", fmt.Errorf("service.PromptService.Enhance: %w", err)
	}
	return out, nil
}

// ---- helpers ---------------------------------------------------------------

// wait blocks for the configured latency or until ctx is done.
// It runs before the lock is taken so a cancelled caller never mutates.
func (s *PromptService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// persistLocked writes the whole collection. A failed write is logged and
// counted; the in-memory mutation stands. The write is detached from ctx
// cancellation because the mutation it records has already happened.
func (s *PromptService) persistLocked(ctx context.Context, op string) {
	if err := s.snapshots.Save(context.WithoutCancel(ctx), s.prompts); err != nil {
		metrics.RecordSnapshotWrite(false)
		s.log.ErrorContext(ctx, "snapshot write failed", "op", op, "error", err)
		return
	}
	metrics.RecordSnapshotWrite(true)
}

func (s *PromptService) indexLocked(id int64) int {
	return slices.IndexFunc(s.prompts, func(p domain.Prompt) bool { return p.ID == id })
}

// nextIDLocked returns one more than the largest id in the collection,
// or 1 when the collection is empty.
func (s *PromptService) nextIDLocked() int64 {
	var maxID int64
	for _, p := range s.prompts {
		maxID = max(maxID, p.ID)
	}
	return maxID + 1
}

func (s *PromptService) hasCategory(id int64) bool {
	return slices.ContainsFunc(s.categories, func(c domain.Category) bool { return c.ID == id })
}

func applyPatch(p *domain.Prompt, patch domain.PromptPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
		if strings.TrimSpace(p.Title) == "" {
			p.Title = defaultTitle
		}
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.PromptText != nil {
		p.PromptText = *patch.PromptText
	}
	if patch.SystemPrompt != nil {
		p.SystemPrompt = *patch.SystemPrompt
	}
	if patch.UserPrompt != nil {
		p.UserPrompt = *patch.UserPrompt
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Tags != nil {
		p.Tags = slices.Clone(*patch.Tags)
	}
	if patch.IsFeatured != nil {
		p.IsFeatured = *patch.IsFeatured
	}
	if patch.IsPublished != nil {
		p.IsPublished = *patch.IsPublished
	}
}

func requireAdmin(actor domain.User) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func clonePrompts(ps []domain.Prompt) []domain.Prompt {
	out := make([]domain.Prompt, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}
