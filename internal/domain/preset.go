package domain

import (
	"time"

	"github.com/google/uuid"
)

// FilterPreset is a named, persisted snapshot of a FilterState.
type FilterPreset struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description *string

	// Filters is a full snapshot taken at save time. Loading a preset
	// replaces the current descriptor wholesale.
	Filters FilterState

	CreatedAt time.Time
	UpdatedAt time.Time
}
