package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/service/favorite"
)

var _ favoriteService = &favoriteServiceMock{}

type favoriteServiceMock struct {
	AddFunc         func(ctx context.Context, userID uuid.UUID, input favorite.AddInput) (*domain.Favorite, error)
	ListFunc        func(ctx context.Context, userID uuid.UUID, input favorite.ListInput) ([]*domain.Favorite, error)
	ListGroupedFunc func(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteGroup, error)
	RemoveFunc      func(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) error
	MoveFunc        func(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID, categoryID *uuid.UUID) error

	calls struct {
		Add []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  favorite.AddInput
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  favorite.ListInput
		}
		ListGrouped []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Remove []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FavoriteID uuid.UUID
		}
		Move []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FavoriteID uuid.UUID
			CategoryID *uuid.UUID
		}
	}
	lockAdd         sync.RWMutex
	lockList        sync.RWMutex
	lockListGrouped sync.RWMutex
	lockRemove      sync.RWMutex
	lockMove        sync.RWMutex
}

func (mock *favoriteServiceMock) Add(ctx context.Context, userID uuid.UUID, input favorite.AddInput) (*domain.Favorite, error) {
	if mock.AddFunc == nil {
		panic("favoriteServiceMock.AddFunc: method is nil but favoriteService.Add was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  favorite.AddInput
	}{
		Ctx:    ctx,
		UserID: userID,
		Input:  input,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, input)
}

func (mock *favoriteServiceMock) AddCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  favorite.AddInput
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  favorite.AddInput
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) List(ctx context.Context, userID uuid.UUID, input favorite.ListInput) ([]*domain.Favorite, error) {
	if mock.ListFunc == nil {
		panic("favoriteServiceMock.ListFunc: method is nil but favoriteService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  favorite.ListInput
	}{
		Ctx:    ctx,
		UserID: userID,
		Input:  input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, input)
}

func (mock *favoriteServiceMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  favorite.ListInput
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  favorite.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) ListGrouped(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteGroup, error) {
	if mock.ListGroupedFunc == nil {
		panic("favoriteServiceMock.ListGroupedFunc: method is nil but favoriteService.ListGrouped was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListGrouped.Lock()
	mock.calls.ListGrouped = append(mock.calls.ListGrouped, callInfo)
	mock.lockListGrouped.Unlock()
	return mock.ListGroupedFunc(ctx, userID)
}

func (mock *favoriteServiceMock) ListGroupedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListGrouped.RLock()
	calls = mock.calls.ListGrouped
	mock.lockListGrouped.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) Remove(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("favoriteServiceMock.RemoveFunc: method is nil but favoriteService.Remove was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FavoriteID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		FavoriteID: favoriteID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, userID, favoriteID)
}

func (mock *favoriteServiceMock) RemoveCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FavoriteID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FavoriteID uuid.UUID
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *favoriteServiceMock) Move(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID, categoryID *uuid.UUID) error {
	if mock.MoveFunc == nil {
		panic("favoriteServiceMock.MoveFunc: method is nil but favoriteService.Move was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FavoriteID uuid.UUID
		CategoryID *uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		FavoriteID: favoriteID,
		CategoryID: categoryID,
	}
	mock.lockMove.Lock()
	mock.calls.Move = append(mock.calls.Move, callInfo)
	mock.lockMove.Unlock()
	return mock.MoveFunc(ctx, userID, favoriteID, categoryID)
}

func (mock *favoriteServiceMock) MoveCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FavoriteID uuid.UUID
	CategoryID *uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FavoriteID uuid.UUID
		CategoryID *uuid.UUID
	}
	mock.lockMove.RLock()
	calls = mock.calls.Move
	mock.lockMove.RUnlock()
	return calls
}
