package middleware

import (
	"github.com/surovp/tg-bot-feedback/internal/domain"
	"sync"
	"time"
)

var _ updateObserver = &updateObserverMock{}

type updateObserverMock struct {
	ObserveUpdateFunc func(kind domain.UpdateKind, err error, d time.Duration)

	calls struct {
		ObserveUpdate []struct {
			Kind domain.UpdateKind
			Err  error
			D    time.Duration
		}
	}
	lockObserveUpdate sync.RWMutex
}

func (mock *updateObserverMock) ObserveUpdate(kind domain.UpdateKind, err error, d time.Duration) {
	if mock.ObserveUpdateFunc == nil {
		panic("updateObserverMock.ObserveUpdateFunc: method is nil but updateObserver.ObserveUpdate was just called")
	}
	callInfo := struct {
		Kind domain.UpdateKind
		Err  error
		D    time.Duration
	}{Kind: kind, Err: err, D: d}
	mock.lockObserveUpdate.Lock()
	mock.calls.ObserveUpdate = append(mock.calls.ObserveUpdate, callInfo)
	mock.lockObserveUpdate.Unlock()
	mock.ObserveUpdateFunc(kind, err, d)
}

func (mock *updateObserverMock) ObserveUpdateCalls() []struct {
	Kind domain.UpdateKind
	Err  error
	D    time.Duration
} {
	mock.lockObserveUpdate.RLock()
	calls := mock.calls.ObserveUpdate
	mock.lockObserveUpdate.RUnlock()
	return calls
}
