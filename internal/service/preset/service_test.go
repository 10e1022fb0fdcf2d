package preset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioview/backend/internal/domain"
	"github.com/folioview/backend/internal/service/filterstate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyRepo() *presetRepoMock {
	return &presetRepoMock{
		ListByOwnerFunc: func(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, preset domain.FilterPreset) error { return nil },
		DeleteFunc: func(ctx context.Context, ownerID, id uuid.UUID) error { return nil },
	}
}

func newTestService(repo *presetRepoMock) (*Service, *filterstate.Store) {
	store := filterstate.New(discardLogger())
	svc := New(discardLogger(), repo, store, uuid.New())
	return svc, store
}

func TestService_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("snapshots current state", func(t *testing.T) {
		t.Parallel()

		repo := emptyRepo()
		svc, store := newTestService(repo)

		err := store.SetSearchQuery("eth")
		require.NoError(t, err)
		err = store.SetChains([]domain.Chain{domain.ChainEthereum})
		require.NoError(t, err)

		res, err := svc.Save(ctx, SaveInput{Name: "  ETH only  "})
		require.NoError(t, err)

		assert.True(t, res.Persisted)
		assert.Equal(t, "ETH only", res.Preset.Name)
		assert.Nil(t, res.Preset.Description)
		assert.Equal(t, "eth", res.Preset.Filters.SearchQuery)
		assert.Equal(t, []domain.Chain{domain.ChainEthereum}, res.Preset.Filters.Chains)
		require.Len(t, repo.CreateCalls(), 1)

		// Later store mutations must not leak into the stored snapshot.
		err = store.SetSearchQuery("sol")
		require.NoError(t, err)
		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "eth", list[0].Filters.SearchQuery)
	})

	t.Run("validates input", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(emptyRepo())

		_, err := svc.Save(ctx, SaveInput{Name: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("repo failure keeps preset in memory", func(t *testing.T) {
		t.Parallel()

		repo := emptyRepo()
		repo.CreateFunc = func(ctx context.Context, preset domain.FilterPreset) error {
			return errors.New("connection refused")
		}
		svc, _ := newTestService(repo)

		res, err := svc.Save(ctx, SaveInput{Name: "transient"})
		require.NoError(t, err)
		assert.False(t, res.Persisted)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "transient", list[0].Name)
	})
}

func TestService_Load(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("replaces descriptor wholesale", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(emptyRepo())

		err := store.SetSearchQuery("aave")
		require.NoError(t, err)
		err = store.SetShowOnlyStaked(true)
		require.NoError(t, err)

		saved, err := svc.Save(ctx, SaveInput{Name: "staked aave"})
		require.NoError(t, err)

		err = store.SetSearchQuery("something else")
		require.NoError(t, err)
		err = store.SetShowOnlyStaked(false)
		require.NoError(t, err)

		loaded, err := svc.Load(ctx, saved.Preset.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.Preset.ID, loaded.ID)

		got := store.State()
		assert.Equal(t, "aave", got.SearchQuery)
		assert.True(t, got.ShowOnlyStaked)
	})

	t.Run("unknown id leaves descriptor untouched", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(emptyRepo())

		err := store.SetSearchQuery("keep me")
		require.NoError(t, err)

		_, err = svc.Load(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, "keep me", store.State().SearchQuery)
	})
}

func TestService_ActivePreset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("load marks active and stays through load", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(emptyRepo())

		saved, err := svc.Save(ctx, SaveInput{Name: "base"})
		require.NoError(t, err)
		assert.Nil(t, svc.ActiveID())

		_, err = svc.Load(ctx, saved.Preset.ID)
		require.NoError(t, err)
		require.NotNil(t, svc.ActiveID())
		assert.Equal(t, saved.Preset.ID, *svc.ActiveID())
	})

	t.Run("manual edit clears active marker", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(emptyRepo())

		saved, err := svc.Save(ctx, SaveInput{Name: "base"})
		require.NoError(t, err)
		_, err = svc.Load(ctx, saved.Preset.ID)
		require.NoError(t, err)
		require.NotNil(t, svc.ActiveID())

		err = store.SetSearchQuery("diverge")
		require.NoError(t, err)
		assert.Nil(t, svc.ActiveID())
	})

	t.Run("edit back to snapshot keeps marker", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(emptyRepo())

		err := store.SetHideZeroBalances(true)
		require.NoError(t, err)
		saved, err := svc.Save(ctx, SaveInput{Name: "hide zero"})
		require.NoError(t, err)
		_, err = svc.Load(ctx, saved.Preset.ID)
		require.NoError(t, err)

		// The same value is an identity patch, so the state never diverges.
		err = store.SetHideZeroBalances(true)
		require.NoError(t, err)
		require.NotNil(t, svc.ActiveID())
		assert.Equal(t, saved.Preset.ID, *svc.ActiveID())
	})

	t.Run("deleting active preset clears marker, keeps descriptor", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(emptyRepo())

		err := store.SetSearchQuery("lido")
		require.NoError(t, err)
		saved, err := svc.Save(ctx, SaveInput{Name: "lido"})
		require.NoError(t, err)
		_, err = svc.Load(ctx, saved.Preset.ID)
		require.NoError(t, err)

		_, err = svc.Delete(ctx, saved.Preset.ID)
		require.NoError(t, err)
		assert.Nil(t, svc.ActiveID())
		assert.Equal(t, "lido", store.State().SearchQuery)
	})
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("removes preset", func(t *testing.T) {
		t.Parallel()

		repo := emptyRepo()
		svc, _ := newTestService(repo)

		saved, err := svc.Save(ctx, SaveInput{Name: "gone soon"})
		require.NoError(t, err)

		res, err := svc.Delete(ctx, saved.Preset.ID)
		require.NoError(t, err)
		assert.True(t, res.Persisted)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
		require.Len(t, repo.DeleteCalls(), 1)
		assert.Equal(t, saved.Preset.ID, repo.DeleteCalls()[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(emptyRepo())

		_, err := svc.Delete(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("repo failure still removes from memory", func(t *testing.T) {
		t.Parallel()

		repo := emptyRepo()
		repo.DeleteFunc = func(ctx context.Context, ownerID, id uuid.UUID) error {
			return errors.New("connection refused")
		}
		svc, _ := newTestService(repo)

		saved, err := svc.Save(ctx, SaveInput{Name: "half gone"})
		require.NoError(t, err)

		res, err := svc.Delete(ctx, saved.Preset.ID)
		require.NoError(t, err)
		assert.False(t, res.Persisted)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("loads from repository once", func(t *testing.T) {
		t.Parallel()

		stored := domain.FilterPreset{
			ID:      uuid.New(),
			Name:    "from db",
			Filters: domain.DefaultState(),
		}
		repo := emptyRepo()
		repo.ListByOwnerFunc = func(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error) {
			return []domain.FilterPreset{stored}, nil
		}
		svc, _ := newTestService(repo)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, stored.ID, list[0].ID)

		_, err = svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, repo.ListByOwnerCalls(), 1)
	})

	t.Run("repository failure retries next call", func(t *testing.T) {
		t.Parallel()

		repo := emptyRepo()
		fail := true
		repo.ListByOwnerFunc = func(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error) {
			if fail {
				return nil, errors.New("connection refused")
			}
			return nil, nil
		}
		svc, _ := newTestService(repo)

		_, err := svc.List(ctx)
		require.Error(t, err)

		fail = false
		_, err = svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, repo.ListByOwnerCalls(), 2)
	})
}

func TestSaveInput_Validate(t *testing.T) {
	t.Parallel()

	longName := make([]byte, maxNameLen+1)
	for i := range longName {
		longName[i] = 'a'
	}
	longDesc := make([]byte, maxDescriptionLen+1)
	for i := range longDesc {
		longDesc[i] = 'b'
	}
	desc := "a short description"

	tests := []struct {
		name    string
		input   SaveInput
		wantErr bool
	}{
		{name: "valid", input: SaveInput{Name: "DeFi focus", Description: &desc}, wantErr: false},
		{name: "valid without description", input: SaveInput{Name: "n"}, wantErr: false},
		{name: "empty name", input: SaveInput{Name: ""}, wantErr: true},
		{name: "blank name", input: SaveInput{Name: "   "}, wantErr: true},
		{name: "name too long", input: SaveInput{Name: string(longName)}, wantErr: true},
		{name: "description too long", input: SaveInput{Name: "ok", Description: ptr(string(longDesc))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
