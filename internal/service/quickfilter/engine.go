// Package quickfilter implements binary toggling of named, predefined
// filter patches with exact-inverse semantics: toggling a quick filter off
// restores every field its patch names to the registry default, and leaves
// all other fields alone.
package quickfilter

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/folioview/backend/internal/domain"
)

type stateStore interface {
	Apply(domain.FilterPatch) (domain.FilterState, error)
}

// Engine tracks which quick filters are selected and applies/reverts their
// patches through the state store. Selection bookkeeping is explicit: two
// catalog entries may touch the same field, so selection cannot be
// reconstructed from the descriptor (last write wins on overlap).
type Engine struct {
	log   *slog.Logger
	store stateStore

	catalog []domain.QuickFilter
	byID    map[string]domain.QuickFilter

	mu       sync.Mutex
	selected map[string]struct{}
}

// New creates an Engine over the given catalog. Catalog entries must have
// unique, non-empty ids, a non-empty valid patch, and a label.
func New(log *slog.Logger, store stateStore, catalog []domain.QuickFilter) (*Engine, error) {
	byID := make(map[string]domain.QuickFilter, len(catalog))
	for _, qf := range catalog {
		if qf.ID == "" {
			return nil, domain.NewValidationError("id", "required")
		}
		if _, dup := byID[qf.ID]; dup {
			return nil, domain.NewValidationError("id", fmt.Sprintf("duplicate quick filter id %q", qf.ID))
		}
		if qf.Label == "" {
			return nil, domain.NewValidationError("label", fmt.Sprintf("quick filter %q has no label", qf.ID))
		}
		if qf.Patch.IsZero() {
			return nil, domain.NewValidationError("patch", fmt.Sprintf("quick filter %q has an empty patch", qf.ID))
		}
		if err := qf.Patch.Validate(); err != nil {
			return nil, fmt.Errorf("quick filter %q: %w", qf.ID, err)
		}
		byID[qf.ID] = qf
	}

	return &Engine{
		log:      log.With("service", "quickfilter"),
		store:    store,
		catalog:  slices.Clone(catalog),
		byID:     byID,
		selected: make(map[string]struct{}),
	}, nil
}

// Catalog returns the quick filters in declaration order.
func (e *Engine) Catalog() []domain.QuickFilter {
	return slices.Clone(e.catalog)
}

// Selected returns the ids of currently selected quick filters, sorted.
func (e *Engine) Selected() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, 0, len(e.selected))
	for id := range e.selected {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// IsSelected reports whether the quick filter is currently on.
func (e *Engine) IsSelected(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.selected[id]
	return ok
}

// Toggle flips a quick filter. Selecting applies its patch; unselecting
// applies the inverse patch (registry defaults for exactly the fields the
// patch names). Returns the new selection state and the resulting
// descriptor. Unknown ids return domain.ErrNotFound.
func (e *Engine) Toggle(id string) (bool, domain.FilterState, error) {
	qf, ok := e.byID[id]
	if !ok {
		return false, domain.FilterState{}, fmt.Errorf("quick filter %q: %w", id, domain.ErrNotFound)
	}

	e.mu.Lock()
	_, wasSelected := e.selected[id]
	if wasSelected {
		delete(e.selected, id)
	} else {
		e.selected[id] = struct{}{}
	}
	e.mu.Unlock()

	patch := qf.Patch
	if wasSelected {
		patch = domain.InversePatch(qf.Patch.Fields())
	}

	state, err := e.store.Apply(patch)
	if err != nil {
		// Catalog patches are validated at construction; a failure here
		// means the store rejected the inverse, which would leave the
		// selection out of sync. Restore bookkeeping before reporting.
		e.mu.Lock()
		if wasSelected {
			e.selected[id] = struct{}{}
		} else {
			delete(e.selected, id)
		}
		e.mu.Unlock()
		return wasSelected, domain.FilterState{}, fmt.Errorf("toggle %q: %w", id, err)
	}

	e.log.Debug("quick filter toggled",
		slog.String("id", id),
		slog.Bool("selected", !wasSelected),
	)
	return !wasSelected, state, nil
}

// DeselectAll clears the selection bookkeeping without touching the
// descriptor. Used when the descriptor is replaced wholesale (reset, preset
// load) and the previous selections no longer describe it.
func (e *Engine) DeselectAll() {
	e.mu.Lock()
	e.selected = make(map[string]struct{})
	e.mu.Unlock()
}

// ClearAll unselects every quick filter and resets exactly the union of
// fields named by any catalog entry. Fields the catalog never touches,
// like free-text search, survive.
func (e *Engine) ClearAll() (domain.FilterState, error) {
	e.mu.Lock()
	e.selected = make(map[string]struct{})
	e.mu.Unlock()

	state, err := e.store.Apply(domain.InversePatch(e.catalogFields()))
	if err != nil {
		return domain.FilterState{}, fmt.Errorf("clear quick filters: %w", err)
	}
	return state, nil
}

// catalogFields returns the union of fields touched by any catalog entry.
func (e *Engine) catalogFields() []domain.Field {
	seen := make(map[domain.Field]struct{})
	var out []domain.Field
	for _, qf := range e.catalog {
		for _, f := range qf.Patch.Fields() {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				out = append(out, f)
			}
		}
	}
	return out
}
