package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

var _ summaryService = &summaryServiceMock{}

type summaryServiceMock struct {
	SummarizeFunc func(ctx context.Context, userID uuid.UUID) (*domain.Summary, error)

	calls struct {
		Summarize []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockSummarize sync.RWMutex
}

func (mock *summaryServiceMock) Summarize(ctx context.Context, userID uuid.UUID) (*domain.Summary, error) {
	if mock.SummarizeFunc == nil {
		panic("summaryServiceMock.SummarizeFunc: method is nil but summaryService.Summarize was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(ctx, userID)
}

func (mock *summaryServiceMock) SummarizeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockSummarize.RLock()
	calls = mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}
