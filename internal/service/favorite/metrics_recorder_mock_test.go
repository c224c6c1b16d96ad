package favorite

import (
	"sync"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	FavoriteAddedFunc func(kind domain.EntityKind)

	calls struct {
		FavoriteAdded []struct {
			Kind domain.EntityKind
		}
	}
	lockFavoriteAdded sync.RWMutex
}

func (mock *metricsRecorderMock) FavoriteAdded(kind domain.EntityKind) {
	if mock.FavoriteAddedFunc == nil {
		panic("metricsRecorderMock.FavoriteAddedFunc: method is nil but metricsRecorder.FavoriteAdded was just called")
	}
	callInfo := struct {
		Kind domain.EntityKind
	}{
		Kind: kind,
	}
	mock.lockFavoriteAdded.Lock()
	mock.calls.FavoriteAdded = append(mock.calls.FavoriteAdded, callInfo)
	mock.lockFavoriteAdded.Unlock()
	mock.FavoriteAddedFunc(kind)
}

func (mock *metricsRecorderMock) FavoriteAddedCalls() []struct {
	Kind domain.EntityKind
} {
	var calls []struct {
		Kind domain.EntityKind
	}
	mock.lockFavoriteAdded.RLock()
	calls = mock.calls.FavoriteAdded
	mock.lockFavoriteAdded.RUnlock()
	return calls
}
