package middleware

import (
	"github.com/surovp/tg-bot-feedback/internal/domain"
	"sync"
)

var _ denialRecorder = &denialRecorderMock{}

type denialRecorderMock struct {
	AccessDeniedFunc func(reason domain.DenyReason)

	calls struct {
		AccessDenied []struct {
			Reason domain.DenyReason
		}
	}
	lockAccessDenied sync.RWMutex
}

func (mock *denialRecorderMock) AccessDenied(reason domain.DenyReason) {
	if mock.AccessDeniedFunc == nil {
		panic("denialRecorderMock.AccessDeniedFunc: method is nil but denialRecorder.AccessDenied was just called")
	}
	callInfo := struct {
		Reason domain.DenyReason
	}{Reason: reason}
	mock.lockAccessDenied.Lock()
	mock.calls.AccessDenied = append(mock.calls.AccessDenied, callInfo)
	mock.lockAccessDenied.Unlock()
	mock.AccessDeniedFunc(reason)
}

func (mock *denialRecorderMock) AccessDeniedCalls() []struct {
	Reason domain.DenyReason
} {
	mock.lockAccessDenied.RLock()
	calls := mock.calls.AccessDenied
	mock.lockAccessDenied.RUnlock()
	return calls
}
