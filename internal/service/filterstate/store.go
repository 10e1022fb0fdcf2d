// Package filterstate owns the filter descriptor: one Store instance is the
// single source of truth for a user's filter, sort and view settings.
// Every mutation goes through Apply, which keeps the descriptor fully
// populated and notifies subscribers with the new snapshot.
package filterstate

import (
	"log/slog"
	"sync"

	"github.com/folioview/backend/internal/domain"
)

// Store holds the current FilterState. Mutations are atomic: no caller ever
// observes a partially-applied patch. The zero value is not usable; use New.
type Store struct {
	log *slog.Logger

	mu        sync.RWMutex
	state     domain.FilterState
	listeners []func(domain.FilterState)
}

// New creates a Store initialized to the default descriptor.
func New(log *slog.Logger) *Store {
	return &Store{
		log:   log.With("service", "filterstate"),
		state: domain.DefaultState(),
	}
}

// State returns a deep copy of the current descriptor.
func (s *Store) State() domain.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers a listener invoked after every mutation with the new
// snapshot. Listeners must be registered before the store is shared;
// there is no unsubscribe.
func (s *Store) Subscribe(fn func(domain.FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Apply merges a patch into the descriptor. Invalid patches (unknown enum
// values, inverted ranges) leave the state untouched and return a
// ValidationError. Fields the patch does not name are never modified.
func (s *Store) Apply(patch domain.FilterPatch) (domain.FilterState, error) {
	if err := patch.Validate(); err != nil {
		return domain.FilterState{}, err
	}

	s.mu.Lock()
	s.state = s.state.Apply(patch)
	snapshot := s.state.Clone()
	listeners := s.listeners
	s.mu.Unlock()

	s.log.Debug("patch applied", slog.Int("fields", len(patch.Fields())))

	for _, fn := range listeners {
		fn(snapshot)
	}
	return snapshot, nil
}

// Replace swaps the whole descriptor, used by preset loading. The new state
// is cloned on the way in, so the caller keeps ownership of its copy.
func (s *Store) Replace(state domain.FilterState) domain.FilterState {
	s.mu.Lock()
	s.state = state.Clone()
	snapshot := s.state.Clone()
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
	return snapshot
}

// Reset restores every field to its registry default.
func (s *Store) Reset() domain.FilterState {
	state, _ := s.Apply(domain.DefaultPatch())
	return state
}

// HasActiveFilters reports whether any filtering dimension is off default.
func (s *Store) HasActiveFilters() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.HasActiveFilters(s.state)
}

// ActiveFilterCount counts the filtering dimensions currently off default.
func (s *Store) ActiveFilterCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ActiveFilterCount(s.state)
}
