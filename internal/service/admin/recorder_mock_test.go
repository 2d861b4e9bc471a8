package admin

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	NotifyFailedFunc func()
	SetSessionsFunc  func(n int)

	calls struct {
		NotifyFailed []struct {
		}
		SetSessions []struct {
			N int
		}
	}
	lockNotifyFailed sync.RWMutex
	lockSetSessions  sync.RWMutex
}

func (mock *recorderMock) NotifyFailed() {
	if mock.NotifyFailedFunc == nil {
		panic("recorderMock.NotifyFailedFunc: method is nil but recorder.NotifyFailed was just called")
	}
	callInfo := struct {
	}{}
	mock.lockNotifyFailed.Lock()
	mock.calls.NotifyFailed = append(mock.calls.NotifyFailed, callInfo)
	mock.lockNotifyFailed.Unlock()
	mock.NotifyFailedFunc()
}

func (mock *recorderMock) NotifyFailedCalls() []struct {
} {
	mock.lockNotifyFailed.RLock()
	calls := mock.calls.NotifyFailed
	mock.lockNotifyFailed.RUnlock()
	return calls
}

func (mock *recorderMock) SetSessions(n int) {
	if mock.SetSessionsFunc == nil {
		panic("recorderMock.SetSessionsFunc: method is nil but recorder.SetSessions was just called")
	}
	callInfo := struct {
		N int
	}{N: n}
	mock.lockSetSessions.Lock()
	mock.calls.SetSessions = append(mock.calls.SetSessions, callInfo)
	mock.lockSetSessions.Unlock()
	mock.SetSessionsFunc(n)
}

func (mock *recorderMock) SetSessionsCalls() []struct {
	N int
} {
	mock.lockSetSessions.RLock()
	calls := mock.calls.SetSessions
	mock.lockSetSessions.RUnlock()
	return calls
}
