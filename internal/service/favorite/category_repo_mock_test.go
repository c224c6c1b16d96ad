package favorite

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ExistsForUserFunc func(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (bool, error)

	calls struct {
		ExistsForUser []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			CategoryID uuid.UUID
		}
	}
	lockExistsForUser sync.RWMutex
}

func (mock *categoryRepoMock) ExistsForUser(ctx context.Context, userID uuid.UUID, categoryID uuid.UUID) (bool, error) {
	if mock.ExistsForUserFunc == nil {
		panic("categoryRepoMock.ExistsForUserFunc: method is nil but categoryRepo.ExistsForUser was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		CategoryID: categoryID,
	}
	mock.lockExistsForUser.Lock()
	mock.calls.ExistsForUser = append(mock.calls.ExistsForUser, callInfo)
	mock.lockExistsForUser.Unlock()
	return mock.ExistsForUserFunc(ctx, userID, categoryID)
}

func (mock *categoryRepoMock) ExistsForUserCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	CategoryID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		CategoryID uuid.UUID
	}
	mock.lockExistsForUser.RLock()
	calls = mock.calls.ExistsForUser
	mock.lockExistsForUser.RUnlock()
	return calls
}
