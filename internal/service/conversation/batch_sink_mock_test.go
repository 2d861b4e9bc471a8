package conversation

import (
	"context"
	"github.com/surovp/tg-bot-feedback/internal/domain"
	"sync"
)

var _ batchSink = &batchSinkMock{}

type batchSinkMock struct {
	SubmitFunc func(ctx context.Context, entries []domain.FeedbackEntry) error

	calls struct {
		Submit []struct {
			Ctx     context.Context
			Entries []domain.FeedbackEntry
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *batchSinkMock) Submit(ctx context.Context, entries []domain.FeedbackEntry) error {
	if mock.SubmitFunc == nil {
		panic("batchSinkMock.SubmitFunc: method is nil but batchSink.Submit was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.FeedbackEntry
	}{Ctx: ctx, Entries: entries}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, entries)
}

func (mock *batchSinkMock) SubmitCalls() []struct {
	Ctx     context.Context
	Entries []domain.FeedbackEntry
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
