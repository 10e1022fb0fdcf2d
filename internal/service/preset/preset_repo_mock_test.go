package preset

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/folioview/backend/internal/domain"
)

var _ presetRepo = &presetRepoMock{}

type presetRepoMock struct {
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error)
	CreateFunc      func(ctx context.Context, preset domain.FilterPreset) error
	DeleteFunc      func(ctx context.Context, ownerID, id uuid.UUID) error

	calls struct {
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		Create []struct {
			Ctx    context.Context
			Preset domain.FilterPreset
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      uuid.UUID
		}
	}
	lockListByOwner sync.RWMutex
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *presetRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FilterPreset, error) {
	if mock.ListByOwnerFunc == nil {
		panic("presetRepoMock.ListByOwnerFunc: method is nil but presetRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID)
}

func (mock *presetRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *presetRepoMock) Create(ctx context.Context, preset domain.FilterPreset) error {
	if mock.CreateFunc == nil {
		panic("presetRepoMock.CreateFunc: method is nil but presetRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Preset domain.FilterPreset
	}{Ctx: ctx, Preset: preset}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, preset)
}

func (mock *presetRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Preset domain.FilterPreset
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *presetRepoMock) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("presetRepoMock.DeleteFunc: method is nil but presetRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      uuid.UUID
	}{Ctx: ctx, OwnerID: ownerID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *presetRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
