package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

var _ searchAdminService = &searchAdminServiceMock{}

type searchAdminServiceMock struct {
	ListForUserFunc func(ctx context.Context, actor *domain.User, targetUserID uuid.UUID) ([]*domain.SearchEntry, error)

	calls struct {
		ListForUser []struct {
			Ctx          context.Context
			Actor        *domain.User
			TargetUserID uuid.UUID
		}
	}
	lockListForUser sync.RWMutex
}

func (mock *searchAdminServiceMock) ListForUser(ctx context.Context, actor *domain.User, targetUserID uuid.UUID) ([]*domain.SearchEntry, error) {
	if mock.ListForUserFunc == nil {
		panic("searchAdminServiceMock.ListForUserFunc: method is nil but searchAdminService.ListForUser was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Actor        *domain.User
		TargetUserID uuid.UUID
	}{
		Ctx:          ctx,
		Actor:        actor,
		TargetUserID: targetUserID,
	}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, actor, targetUserID)
}

func (mock *searchAdminServiceMock) ListForUserCalls() []struct {
	Ctx          context.Context
	Actor        *domain.User
	TargetUserID uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		Actor        *domain.User
		TargetUserID uuid.UUID
	}
	mock.lockListForUser.RLock()
	calls = mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}
