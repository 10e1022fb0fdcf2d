package quickfilter

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioview/backend/internal/domain"
	"github.com/folioview/backend/internal/service/filterstate"
)

func newTestEngine(t *testing.T) (*Engine, *filterstate.Store) {
	t.Helper()
	store := filterstate.New(slog.Default())
	eng, err := New(slog.Default(), store, DefaultCatalog())
	require.NoError(t, err)
	return eng, store
}

func findQF(t *testing.T, eng *Engine, id string) domain.QuickFilter {
	t.Helper()
	for _, qf := range eng.Catalog() {
		if qf.ID == id {
			return qf
		}
	}
	t.Fatalf("quick filter %q not in catalog", id)
	return domain.QuickFilter{}
}

func TestNew_RejectsBadCatalog(t *testing.T) {
	t.Parallel()

	store := filterstate.New(slog.Default())
	q := "x"
	valid := domain.FilterPatch{SearchQuery: &q}

	tests := []struct {
		name    string
		catalog []domain.QuickFilter
	}{
		{"empty id", []domain.QuickFilter{{Label: "a", Patch: valid}}},
		{"duplicate id", []domain.QuickFilter{
			{ID: "a", Label: "a", Patch: valid},
			{ID: "a", Label: "b", Patch: valid},
		}},
		{"missing label", []domain.QuickFilter{{ID: "a", Patch: valid}}},
		{"empty patch", []domain.QuickFilter{{ID: "a", Label: "a"}}},
		{"invalid patch", []domain.QuickFilter{{ID: "a", Label: "a", Patch: domain.FilterPatch{
			ValueRange: domain.SetRange(10, 1),
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(slog.Default(), store, tt.catalog)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestToggle_OnAppliesPatch(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)

	selected, state, err := eng.Toggle("high-value")
	require.NoError(t, err)

	assert.True(t, selected)
	assert.Equal(t, &domain.Range{Min: 1000, Max: maxUSD}, state.ValueRange)
	assert.Equal(t, domain.SortFieldValue, state.SortBy)
	assert.Equal(t, domain.SortOrderDesc, state.SortOrder)
	assert.Equal(t, 1, store.ActiveFilterCount(), "value range is the only filtering dimension set")
	assert.Equal(t, []string{"high-value"}, eng.Selected())
}

func TestToggle_OffRestoresRegistryDefaults(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)

	_, _, err := eng.Toggle("high-value")
	require.NoError(t, err)

	selected, state, err := eng.Toggle("high-value")
	require.NoError(t, err)

	assert.False(t, selected)
	assert.Nil(t, state.ValueRange)
	assert.Equal(t, domain.SortFieldValue, state.SortBy)
	assert.Equal(t, domain.SortOrderDesc, state.SortOrder)
	assert.Equal(t, 0, store.ActiveFilterCount())
	assert.Empty(t, eng.Selected())
}

func TestToggle_UnknownID(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)
	before := store.State()

	_, _, err := eng.Toggle("does-not-exist")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, store.State().Equal(before), "not-found toggle must be a no-op")
}

// Toggling off must leave fields outside the quick filter's patch untouched,
// even ones mutated between toggle-on and toggle-off.
func TestToggle_RoundTripSurvivesUnrelatedMutations(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)

	_, _, err := eng.Toggle("staking")
	require.NoError(t, err)

	require.NoError(t, store.SetSearchQuery("lido"))
	require.NoError(t, store.SetHideSmallBalances(true))

	_, state, err := eng.Toggle("staking")
	require.NoError(t, err)

	assert.Empty(t, state.PositionTypes)
	assert.False(t, state.ShowOnlyStaked)
	assert.Equal(t, "lido", state.SearchQuery, "unrelated field reset by toggle-off")
	assert.True(t, state.HideSmallBalances, "unrelated field reset by toggle-off")
}

// Round-trip property over the whole catalog: for every quick filter, the
// fields its patch names return to their pre-toggle (default) values and
// nothing else moves.
func TestToggle_RoundTripAllCatalogEntries(t *testing.T) {
	t.Parallel()

	for _, qf := range DefaultCatalog() {
		t.Run(qf.ID, func(t *testing.T) {
			t.Parallel()

			eng, store := newTestEngine(t)
			before := store.State()

			_, _, err := eng.Toggle(qf.ID)
			require.NoError(t, err)
			_, after, err := eng.Toggle(qf.ID)
			require.NoError(t, err)

			assert.True(t, after.Equal(before), "toggle(q); toggle(q) must restore the descriptor")
		})
	}
}

// Two quick filters constraining the same field: no reconciliation is
// attempted, the last operation wins.
func TestToggle_OverlappingFieldsLastWriteWins(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)

	// Both high-value and high-apy force SortBy.
	_, _, err := eng.Toggle("high-value")
	require.NoError(t, err)
	_, state, err := eng.Toggle("high-apy")
	require.NoError(t, err)
	assert.Equal(t, domain.SortFieldAPY, state.SortBy)

	// Toggling high-apy off resets SortBy to the registry default, not to
	// high-value's choice, even though high-value is still selected.
	_, state, err = eng.Toggle("high-apy")
	require.NoError(t, err)
	assert.Equal(t, domain.SortFieldValue, state.SortBy)
	assert.Equal(t, []string{"high-value"}, eng.Selected())
	assert.NotNil(t, store.State().ValueRange, "high-value's other fields survive")
}

func TestClearAll_ResetsOnlyCatalogFields(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)

	_, _, err := eng.Toggle("high-value")
	require.NoError(t, err)
	_, _, err = eng.Toggle("stablecoins")
	require.NoError(t, err)
	require.NoError(t, store.SetSearchQuery("dai"))
	require.NoError(t, store.SetHideZeroBalances(true))

	state, err := eng.ClearAll()
	require.NoError(t, err)

	assert.Empty(t, eng.Selected())
	assert.Nil(t, state.ValueRange)
	assert.Empty(t, state.TokenTypes)
	assert.Empty(t, state.PositionTypes)
	assert.Equal(t, "dai", state.SearchQuery, "search text must survive ClearAll")
	assert.True(t, state.HideZeroBalances, "HideZeroBalances is not touched by any catalog entry")
}

func TestIsSelected(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(t)
	assert.False(t, eng.IsSelected("defi"))

	_, _, err := eng.Toggle("defi")
	require.NoError(t, err)
	assert.True(t, eng.IsSelected("defi"))
}

// Scenario from the filter panel: default state, toggle High Value, expect
// one active dimension; toggle again, expect a clean descriptor.
func TestScenario_HighValueChip(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)
	qf := findQF(t, eng, "high-value")
	require.NotNil(t, qf.Patch.ValueRange)

	_, state, err := eng.Toggle("high-value")
	require.NoError(t, err)
	assert.Equal(t, &domain.Range{Min: 1000, Max: maxUSD}, state.ValueRange)
	assert.Equal(t, 1, domain.ActiveFilterCount(state))

	_, state, err = eng.Toggle("high-value")
	require.NoError(t, err)
	assert.Nil(t, state.ValueRange)
	assert.Equal(t, domain.SortFieldValue, state.SortBy)
	assert.Equal(t, domain.SortOrderDesc, state.SortOrder)
	assert.Equal(t, 0, domain.ActiveFilterCount(state))
	assert.False(t, store.HasActiveFilters())
}

func TestDeselectAll_BookkeepingOnly(t *testing.T) {
	t.Parallel()

	eng, store := newTestEngine(t)
	_, _, err := eng.Toggle("stablecoins")
	require.NoError(t, err)
	require.NotEmpty(t, eng.Selected())

	before := store.State()
	eng.DeselectAll()

	assert.Empty(t, eng.Selected())
	assert.True(t, store.State().Equal(before), "DeselectAll must not touch the descriptor")
}
