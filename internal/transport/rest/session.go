package rest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/config"
	"github.com/folioview/backend/internal/domain"
	"github.com/folioview/backend/internal/service/filterstate"
	"github.com/folioview/backend/internal/service/preset"
	"github.com/folioview/backend/internal/service/quickfilter"
)

// PresetRepository is the persistence surface a session needs for presets.
// Satisfied by the PostgreSQL repository and the in-memory store.
type PresetRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error)
	Create(ctx context.Context, preset domain.FilterPreset) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Session bundles one user's filter state with the services operating on it.
type Session struct {
	Filters *filterstate.Store
	Quick   *quickfilter.Engine
	Presets *preset.Service

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// SessionRegistry creates and caches per-user sessions. Sessions idle longer
// than the configured TTL are evicted by a background janitor; the next
// request simply builds a fresh one (presets reload from the repository, the
// descriptor returns to defaults).
type SessionRegistry struct {
	log     *slog.Logger
	repo    PresetRepository
	catalog []domain.QuickFilter
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionRegistry creates a registry and starts its eviction janitor.
// Call Stop on shutdown.
func NewSessionRegistry(log *slog.Logger, repo PresetRepository, cfg config.SessionsConfig) *SessionRegistry {
	r := &SessionRegistry{
		log:      log.With("component", "sessions"),
		repo:     repo,
		catalog:  quickfilter.DefaultCatalog(),
		idleTTL:  cfg.IdleTTL,
		sessions: make(map[uuid.UUID]*Session),
		stop:     make(chan struct{}),
	}
	go r.janitor(cfg.CleanupInterval)
	return r
}

// Get returns the user's session, creating it on first use.
func (r *SessionRegistry) Get(userID uuid.UUID) (*Session, error) {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		s.touch(now)
		return s, nil
	}

	store := filterstate.New(r.log)
	engine, err := quickfilter.New(r.log, store, r.catalog)
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}

	s := &Session{
		Filters:  store,
		Quick:    engine,
		Presets:  preset.New(r.log, r.repo, store, userID),
		lastSeen: now,
	}
	r.sessions[userID] = s

	r.log.Debug("session created", slog.String("user_id", userID.String()))
	return s, nil
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Stop terminates the eviction janitor.
func (r *SessionRegistry) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *SessionRegistry) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.evictIdle(now)
		}
	}
}

func (r *SessionRegistry) evictIdle(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID, s := range r.sessions {
		if s.idleSince(now) > r.idleTTL {
			delete(r.sessions, userID)
			r.log.Debug("session evicted", slog.String("user_id", userID.String()))
		}
	}
}
