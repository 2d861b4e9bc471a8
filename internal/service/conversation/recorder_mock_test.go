package conversation

import (
	"sync"
)

var _ recorder = &recorderMock{}

type recorderMock struct {
	BatchSubmittedFunc func(n int, err error)
	FeedbackSavedFunc  func()
	SetSessionsFunc    func(n int)

	calls struct {
		BatchSubmitted []struct {
			N   int
			Err error
		}
		FeedbackSaved []struct {
		}
		SetSessions []struct {
			N int
		}
	}
	lockBatchSubmitted sync.RWMutex
	lockFeedbackSaved  sync.RWMutex
	lockSetSessions    sync.RWMutex
}

func (mock *recorderMock) BatchSubmitted(n int, err error) {
	if mock.BatchSubmittedFunc == nil {
		panic("recorderMock.BatchSubmittedFunc: method is nil but recorder.BatchSubmitted was just called")
	}
	callInfo := struct {
		N   int
		Err error
	}{N: n, Err: err}
	mock.lockBatchSubmitted.Lock()
	mock.calls.BatchSubmitted = append(mock.calls.BatchSubmitted, callInfo)
	mock.lockBatchSubmitted.Unlock()
	mock.BatchSubmittedFunc(n, err)
}

func (mock *recorderMock) BatchSubmittedCalls() []struct {
	N   int
	Err error
} {
	mock.lockBatchSubmitted.RLock()
	calls := mock.calls.BatchSubmitted
	mock.lockBatchSubmitted.RUnlock()
	return calls
}

func (mock *recorderMock) FeedbackSaved() {
	if mock.FeedbackSavedFunc == nil {
		panic("recorderMock.FeedbackSavedFunc: method is nil but recorder.FeedbackSaved was just called")
	}
	callInfo := struct {
	}{}
	mock.lockFeedbackSaved.Lock()
	mock.calls.FeedbackSaved = append(mock.calls.FeedbackSaved, callInfo)
	mock.lockFeedbackSaved.Unlock()
	mock.FeedbackSavedFunc()
}

func (mock *recorderMock) FeedbackSavedCalls() []struct {
} {
	mock.lockFeedbackSaved.RLock()
	calls := mock.calls.FeedbackSaved
	mock.lockFeedbackSaved.RUnlock()
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
