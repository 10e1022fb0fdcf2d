package rest

import (
	"log/slog"
	"net/http"

	"github.com/folioview/backend/internal/domain"
)

// QuickFilterHandler serves the quick-filter catalog and toggling.
type QuickFilterHandler struct {
	log      *slog.Logger
	sessions *SessionRegistry
}

// NewQuickFilterHandler creates a QuickFilterHandler.
func NewQuickFilterHandler(log *slog.Logger, sessions *SessionRegistry) *QuickFilterHandler {
	return &QuickFilterHandler{log: log, sessions: sessions}
}

// QuickFilterBody is one catalog entry in API responses. The patch itself is
// an implementation detail and stays server-side.
type QuickFilterBody struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Color    string  `json:"color,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Selected bool    `json:"selected"`
}

// CatalogResponse lists the catalog with per-entry selection state.
type CatalogResponse struct {
	QuickFilters []QuickFilterBody `json:"quickFilters"`
}

// ToggleResponse reports a toggle outcome together with the resulting state.
type ToggleResponse struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
	StateResponse
}

func buildCatalogResponse(s *Session) CatalogResponse {
	catalog := s.Quick.Catalog()
	out := make([]QuickFilterBody, len(catalog))
	for i, qf := range catalog {
		out[i] = QuickFilterBody{
			ID:       qf.ID,
			Label:    qf.Label,
			Color:    qf.Color,
			Icon:     qf.Icon,
			Selected: s.Quick.IsSelected(qf.ID),
		}
	}
	return CatalogResponse{QuickFilters: out}
}

// List returns the catalog with selection flags.
// GET /api/v1/quick-filters
func (h *QuickFilterHandler) List(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}
	writeJSON(w, http.StatusOK, buildCatalogResponse(s))
}

// Toggle flips one quick filter on or off.
// POST /api/v1/quick-filters/{id}/toggle
func (h *QuickFilterHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondError(w, r, h.log, domain.NewValidationError("id", "required"))
		return
	}

	selected, _, err := s.Quick.Toggle(id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ToggleResponse{
		ID:            id,
		Selected:      selected,
		StateResponse: buildStateResponse(s),
	})
}

// Clear unselects every quick filter and restores the fields they govern.
// POST /api/v1/quick-filters/clear
func (h *QuickFilterHandler) Clear(w http.ResponseWriter, r *http.Request) {
	s := resolveSession(w, r, h.log, h.sessions)
	if s == nil {
		return
	}

	if _, err := s.Quick.ClearAll(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, buildStateResponse(s))
}
