// Package memory provides in-memory adapters for running without PostgreSQL.
// Data lives for the process lifetime only.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/domain"
)

// PresetStore is an in-memory filter-preset repository. It is safe for
// concurrent use and mirrors the PostgreSQL repository's semantics.
type PresetStore struct {
	mu      sync.RWMutex
	presets map[uuid.UUID]domain.FilterPreset
}

// NewPresetStore creates an empty in-memory preset store.
func NewPresetStore() *PresetStore {
	return &PresetStore{
		presets: make(map[uuid.UUID]domain.FilterPreset),
	}
}

// ListByOwner returns all presets owned by ownerID ordered by creation time.
// Returns an empty slice (not nil) when the owner has no presets.
func (s *PresetStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.FilterPreset{}
	for _, p := range s.presets {
		if p.OwnerID == ownerID {
			result = append(result, clonePreset(p))
		}
	}
	slices.SortFunc(result, func(a, b domain.FilterPreset) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return result, nil
}

// GetByID returns one preset by id with owner filter.
func (s *PresetStore) GetByID(_ context.Context, ownerID, id uuid.UUID) (domain.FilterPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[id]
	if !ok || p.OwnerID != ownerID {
		return domain.FilterPreset{}, fmt.Errorf("preset %s: %w", id, domain.ErrNotFound)
	}

	return clonePreset(p), nil
}

// Create inserts a new preset.
func (s *PresetStore) Create(_ context.Context, preset domain.FilterPreset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[preset.ID]; ok {
		return fmt.Errorf("preset %s: %w", preset.ID, domain.ErrAlreadyExists)
	}

	s.presets[preset.ID] = clonePreset(preset)
	return nil
}

// Delete removes a preset with owner filter.
func (s *PresetStore) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.presets[id]
	if !ok || p.OwnerID != ownerID {
		return fmt.Errorf("preset %s: %w", id, domain.ErrNotFound)
	}

	delete(s.presets, id)
	return nil
}

// clonePreset copies a preset so callers cannot alias stored state.
func clonePreset(p domain.FilterPreset) domain.FilterPreset {
	out := p
	out.Filters = p.Filters.Clone()
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	return out
}
