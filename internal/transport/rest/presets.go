package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/domain"
	"github.com/folioview/backend/internal/service/preset"
)

// PresetHandler serves preset CRUD and loading.
type PresetHandler struct {
	log      *slog.Logger
	sessions *SessionRegistry
}

// NewPresetHandler creates a PresetHandler.
func NewPresetHandler(log *slog.Logger, sessions *SessionRegistry) *PresetHandler {
	return &PresetHandler{log: log, sessions: sessions}
}

// PresetBody is one preset in API responses.
type PresetBody struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Filters     domain.FilterState `json:"filters"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func toPresetBody(p domain.FilterPreset) PresetBody {
	return PresetBody{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Filters:     p.Filters,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ListResponse lists the caller's presets with the active marker.
type ListResponse struct {
	Presets        []PresetBody `json:"presets"`
	ActivePresetID *uuid.UUID   `json:"activePresetId"`
}

// SaveRequest is the POST /presets body.
type SaveRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// SaveResponse reports the created preset. Persisted=false signals the
// preset exists for this session but could not be written durably.
type SaveResponse struct {
	Preset    PresetBody `json:"preset"`
	Persisted bool       `json:"persisted"`
}

// DeleteResponse reports a delete and whether it reached storage.
type DeleteResponse struct {
	Persisted bool `json:"persisted"`
}

// LoadResponse reports the loaded preset and the resulting state.
type LoadResponse struct {
	Preset PresetBody `json:"preset"`
	StateResponse
}

// List returns the caller's presets.
// GET /api/v1/presets
func (h *PresetHandler) List(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}

	presets, err := s.Presets.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]PresetBody, len(presets))
	for i, p := range presets {
		out[i] = toPresetBody(p)
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Presets:        out,
		ActivePresetID: s.Presets.ActiveID(),
	})
}

// Save snapshots the current descriptor under a name.
// POST /api/v1/presets
func (h *PresetHandler) Save(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	result, err := s.Presets.Save(r.Context(), preset.SaveInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, SaveResponse{
		Preset:    toPresetBody(result.Preset),
		Persisted: result.Persisted,
	})
}

// Load replaces the descriptor with a preset's snapshot.
// POST /api/v1/presets/{id}/load
func (h *PresetHandler) Load(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	loaded, err := s.Presets.Load(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	// The preset snapshot replaces the descriptor wholesale; previous chip
	// selections no longer describe it.
	s.Quick.DeselectAll()

	writeJSON(w, http.StatusOK, LoadResponse{
		Preset:        toPresetBody(loaded),
		StateResponse: buildStateResponse(s),
	})
}

// Delete removes a preset.
// DELETE /api/v1/presets/{id}
func (h *PresetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	result, err := s.Presets.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Persisted: result.Persisted})
}
