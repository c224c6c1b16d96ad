package category

import (
	"sync"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	CategoryDeletedFunc func(policy domain.CascadePolicy)

	calls struct {
		CategoryDeleted []struct {
			Policy domain.CascadePolicy
		}
	}
	lockCategoryDeleted sync.RWMutex
}

func (mock *metricsRecorderMock) CategoryDeleted(policy domain.CascadePolicy) {
	if mock.CategoryDeletedFunc == nil {
		panic("metricsRecorderMock.CategoryDeletedFunc: method is nil but metricsRecorder.CategoryDeleted was just called")
	}
	callInfo := struct {
		Policy domain.CascadePolicy
	}{
		Policy: policy,
	}
	mock.lockCategoryDeleted.Lock()
	mock.calls.CategoryDeleted = append(mock.calls.CategoryDeleted, callInfo)
	mock.lockCategoryDeleted.Unlock()
	mock.CategoryDeletedFunc(policy)
}

func (mock *metricsRecorderMock) CategoryDeletedCalls() []struct {
	Policy domain.CascadePolicy
} {
	var calls []struct {
		Policy domain.CascadePolicy
	}
	mock.lockCategoryDeleted.RLock()
	calls = mock.calls.CategoryDeleted
	mock.lockCategoryDeleted.RUnlock()
	return calls
}
