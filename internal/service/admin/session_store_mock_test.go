package admin

import (
	"sync"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	FlushFunc func() int

	calls struct {
		Flush []struct {
		}
	}
	lockFlush sync.RWMutex
}

func (mock *sessionStoreMock) Flush() int {
	if mock.FlushFunc == nil {
		panic("sessionStoreMock.FlushFunc: method is nil but sessionStore.Flush was just called")
	}
	callInfo := struct {
	}{}
	mock.lockFlush.Lock()
	mock.calls.Flush = append(mock.calls.Flush, callInfo)
	mock.lockFlush.Unlock()
	return mock.FlushFunc()
}

func (mock *sessionStoreMock) FlushCalls() []struct {
} {
	mock.lockFlush.RLock()
	calls := mock.calls.Flush
	mock.lockFlush.RUnlock()
	return calls
}
