package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	GetByIDFunc            func(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) (*domain.Favorite, error)
	ListFunc               func(ctx context.Context, userID uuid.UUID, filter domain.FavoriteFilter) ([]*domain.Favorite, error)
	ExistsByExternalIDFunc func(ctx context.Context, userID uuid.UUID, kind domain.EntityKind, externalID string) (bool, error)
	CreateFunc             func(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	UpdateCategoryFunc     func(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID, categoryID *uuid.UUID) error
	DeleteFunc             func(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FavoriteID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.FavoriteFilter
		}
		ExistsByExternalID []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Kind       domain.EntityKind
			ExternalID string
		}
		Create []struct {
			Ctx context.Context
			F   *domain.Favorite
		}
		UpdateCategory []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FavoriteID uuid.UUID
			CategoryID *uuid.UUID
		}
		Delete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			FavoriteID uuid.UUID
		}
	}
	lockGetByID            sync.RWMutex
	lockList               sync.RWMutex
	lockExistsByExternalID sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdateCategory     sync.RWMutex
	lockDelete             sync.RWMutex
}

func (mock *favoriteRepoMock) GetByID(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) (*domain.Favorite, error) {
	if mock.GetByIDFunc == nil {
		panic("favoriteRepoMock.GetByIDFunc: method is nil but favoriteRepo.GetByID was just called")
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
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, favoriteID)
}

func (mock *favoriteRepoMock) GetByIDCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FavoriteID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FavoriteID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.FavoriteFilter) ([]*domain.Favorite, error) {
	if mock.ListFunc == nil {
		panic("favoriteRepoMock.ListFunc: method is nil but favoriteRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.FavoriteFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *favoriteRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.FavoriteFilter
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.FavoriteFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) ExistsByExternalID(ctx context.Context, userID uuid.UUID, kind domain.EntityKind, externalID string) (bool, error) {
	if mock.ExistsByExternalIDFunc == nil {
		panic("favoriteRepoMock.ExistsByExternalIDFunc: method is nil but favoriteRepo.ExistsByExternalID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Kind       domain.EntityKind
		ExternalID string
	}{
		Ctx:        ctx,
		UserID:     userID,
		Kind:       kind,
		ExternalID: externalID,
	}
	mock.lockExistsByExternalID.Lock()
	mock.calls.ExistsByExternalID = append(mock.calls.ExistsByExternalID, callInfo)
	mock.lockExistsByExternalID.Unlock()
	return mock.ExistsByExternalIDFunc(ctx, userID, kind, externalID)
}

func (mock *favoriteRepoMock) ExistsByExternalIDCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Kind       domain.EntityKind
	ExternalID string
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Kind       domain.EntityKind
		ExternalID string
	}
	mock.lockExistsByExternalID.RLock()
	calls = mock.calls.ExistsByExternalID
	mock.lockExistsByExternalID.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	if mock.CreateFunc == nil {
		panic("favoriteRepoMock.CreateFunc: method is nil but favoriteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   *domain.Favorite
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *favoriteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   *domain.Favorite
} {
	var calls []struct {
		Ctx context.Context
		F   *domain.Favorite
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) UpdateCategory(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID, categoryID *uuid.UUID) error {
	if mock.UpdateCategoryFunc == nil {
		panic("favoriteRepoMock.UpdateCategoryFunc: method is nil but favoriteRepo.UpdateCategory was just called")
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
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, userID, favoriteID, categoryID)
}

func (mock *favoriteRepoMock) UpdateCategoryCalls() []struct {
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
	mock.lockUpdateCategory.RLock()
	calls = mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *favoriteRepoMock) Delete(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("favoriteRepoMock.DeleteFunc: method is nil but favoriteRepo.Delete was just called")
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
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, favoriteID)
}

func (mock *favoriteRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	FavoriteID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		FavoriteID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
