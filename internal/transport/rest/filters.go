package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/domain"
	"github.com/folioview/backend/pkg/ctxutil"
)

// FilterHandler serves the filter descriptor endpoints.
type FilterHandler struct {
	log      *slog.Logger
	sessions *SessionRegistry
}

// NewFilterHandler creates a FilterHandler.
func NewFilterHandler(log *slog.Logger, sessions *SessionRegistry) *FilterHandler {
	return &FilterHandler{log: log, sessions: sessions}
}

// StateResponse is the canonical representation of a user's filter session:
// the full descriptor plus everything derived from it.
type StateResponse struct {
	Filters              domain.FilterState `json:"filters"`
	HasActiveFilters     bool               `json:"hasActiveFilters"`
	ActiveFilterCount    int                `json:"activeFilterCount"`
	ActivePresetID       *uuid.UUID         `json:"activePresetId"`
	SelectedQuickFilters []string           `json:"selectedQuickFilters"`
}

func buildStateResponse(s *Session) StateResponse {
	state := s.Filters.State()
	return StateResponse{
		Filters:              state,
		HasActiveFilters:     domain.HasActiveFilters(state),
		ActiveFilterCount:    domain.ActiveFilterCount(state),
		ActivePresetID:       s.Presets.ActiveID(),
		SelectedQuickFilters: s.Quick.Selected(),
	}
}

// session resolves the caller's session. Returns nil after writing the error
// response when the request is anonymous or the session cannot be built.
func (h *FilterHandler) session(w http.ResponseWriter, r *http.Request) *Session {
	return resolveSession(w, r, h.log, h.sessions)
}

func resolveSession(w http.ResponseWriter, r *http.Request, log *slog.Logger, sessions *SessionRegistry) *Session {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		respondError(w, r, log, domain.ErrUnauthorized)
		return nil
	}
	s, err := sessions.Get(userID)
	if err != nil {
		respondError(w, r, log, err)
		return nil
	}
	return s
}

// Get returns the current descriptor and derived state.
// GET /api/v1/filters
func (h *FilterHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	writeJSON(w, http.StatusOK, buildStateResponse(s))
}

// Patch applies a partial update to the descriptor. Fields absent from the
// body stay untouched; an invalid patch changes nothing.
// PATCH /api/v1/filters
func (h *FilterHandler) Patch(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	patch, err := decodeFilterPatch(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if _, err := s.Filters.Apply(patch); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, buildStateResponse(s))
}

// Reset restores the descriptor to its defaults.
// POST /api/v1/filters/reset
func (h *FilterHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	s.Filters.Reset()
	s.Quick.DeselectAll()
	writeJSON(w, http.StatusOK, buildStateResponse(s))
}
