// Package preset manages named, persisted snapshots of the filter
// descriptor. In-memory state and durability are deliberately decoupled:
// every operation mutates the in-memory collection first and reports a
// persistence failure as a warning flag, never by rolling the mutation back.
package preset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/domain"
)

type presetRepo interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error)
	Create(ctx context.Context, preset domain.FilterPreset) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type stateStore interface {
	State() domain.FilterState
	Replace(state domain.FilterState) domain.FilterState
	Subscribe(fn func(domain.FilterState))
}

// Service is the preset manager for one owner's filter session.
type Service struct {
	log     *slog.Logger
	repo    presetRepo
	store   stateStore
	ownerID uuid.UUID

	mu       sync.Mutex
	loaded   bool
	presets  []domain.FilterPreset
	activeID *uuid.UUID
	// activeSnapshot is the descriptor the active preset produced; any
	// store mutation that diverges from it clears the active marker.
	activeSnapshot domain.FilterState
}

// New creates a preset manager bound to one owner and one state store.
// It subscribes to the store so manual edits invalidate the active-preset
// marker.
func New(log *slog.Logger, repo presetRepo, store stateStore, ownerID uuid.UUID) *Service {
	s := &Service{
		log:     log.With("service", "preset"),
		repo:    repo,
		store:   store,
		ownerID: ownerID,
	}
	store.Subscribe(s.onStateChange)
	return s
}

// onStateChange clears the active-preset marker when the descriptor no
// longer matches the active preset's snapshot. Re-loading the same preset
// (or an edit that happens to land back on the snapshot) keeps it.
func (s *Service) onStateChange(state domain.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID != nil && !state.Equal(s.activeSnapshot) {
		s.activeID = nil
	}
}

// ensureLoaded fills the in-memory collection from the repository once.
// A repository read failure is surfaced; the collection stays unloaded so
// the next call retries.
func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	presets, err := s.repo.ListByOwner(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}
	s.presets = presets
	s.loaded = true
	return nil
}

// SaveResult reports a save: the created preset, and whether the write
// reached the repository. Persisted=false means the preset exists in memory
// for this session but may be gone next session.
type SaveResult struct {
	Preset    domain.FilterPreset
	Persisted bool
}

// Save snapshots the current descriptor under the given name.
func (s *Service) Save(ctx context.Context, input SaveInput) (SaveResult, error) {
	if err := input.Validate(); err != nil {
		return SaveResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return SaveResult{}, fmt.Errorf("preset.Save: %w", err)
	}

	now := time.Now().UTC()
	preset := domain.FilterPreset{
		ID:          uuid.New(),
		OwnerID:     s.ownerID,
		Name:        input.name(),
		Description: input.description(),
		Filters:     s.store.State().Clone(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.presets = append(s.presets, preset)

	persisted := true
	if err := s.repo.Create(ctx, preset); err != nil {
		persisted = false
		s.log.Warn("preset saved in memory but not persisted",
			slog.String("preset_id", preset.ID.String()),
			slog.String("error", err.Error()),
		)
	} else {
		s.log.Info("preset saved", slog.String("preset_id", preset.ID.String()))
	}

	return SaveResult{Preset: preset, Persisted: persisted}, nil
}

// Load replaces the descriptor wholesale with the preset's snapshot and
// marks the preset active. Unknown ids return domain.ErrNotFound and leave
// the descriptor untouched.
func (s *Service) Load(ctx context.Context, id uuid.UUID) (domain.FilterPreset, error) {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return domain.FilterPreset{}, fmt.Errorf("preset.Load: %w", err)
	}

	idx := slices.IndexFunc(s.presets, func(p domain.FilterPreset) bool { return p.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return domain.FilterPreset{}, fmt.Errorf("preset %s: %w", id, domain.ErrNotFound)
	}
	preset := s.presets[idx]

	// Mark active before Replace: the change notification compares against
	// the snapshot and must see it in place.
	active := preset.ID
	s.activeID = &active
	s.activeSnapshot = preset.Filters.Clone()
	s.mu.Unlock()

	s.store.Replace(preset.Filters)

	s.log.Info("preset loaded", slog.String("preset_id", id.String()))
	return preset, nil
}

// DeleteResult reports a delete and whether it reached the repository.
type DeleteResult struct {
	Persisted bool
}

// Delete removes a preset. Deleting the active preset clears the marker but
// leaves the descriptor as it is. Unknown ids return domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return DeleteResult{}, fmt.Errorf("preset.Delete: %w", err)
	}

	idx := slices.IndexFunc(s.presets, func(p domain.FilterPreset) bool { return p.ID == id })
	if idx < 0 {
		return DeleteResult{}, fmt.Errorf("preset %s: %w", id, domain.ErrNotFound)
	}

	s.presets = slices.Delete(s.presets, idx, idx+1)
	if s.activeID != nil && *s.activeID == id {
		s.activeID = nil
	}

	persisted := true
	if err := s.repo.Delete(ctx, s.ownerID, id); err != nil {
		persisted = false
		s.log.Warn("preset deleted in memory but not persisted",
			slog.String("preset_id", id.String()),
			slog.String("error", err.Error()),
		)
	} else {
		s.log.Info("preset deleted", slog.String("preset_id", id.String()))
	}

	return DeleteResult{Persisted: persisted}, nil
}

// List returns the owner's presets ordered by creation time, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.FilterPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, fmt.Errorf("preset.List: %w", err)
	}

	out := slices.Clone(s.presets)
	slices.SortStableFunc(out, func(a, b domain.FilterPreset) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

// ActiveID returns the id of the currently active preset, or nil when the
// descriptor has diverged from every preset.
func (s *Service) ActiveID() *uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == nil {
		return nil
	}
	id := *s.activeID
	return &id
}
