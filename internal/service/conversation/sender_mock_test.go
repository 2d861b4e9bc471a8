package conversation

import (
	"context"
	"github.com/surovp/tg-bot-feedback/internal/domain"
	"sync"
)

var _ sender = &senderMock{}

type senderMock struct {
	SendFunc func(ctx context.Context, chatID int64, msg domain.OutMessage) error

	calls struct {
		Send []struct {
			Ctx    context.Context
			ChatID int64
			Msg    domain.OutMessage
		}
	}
	lockSend sync.RWMutex
}

func (mock *senderMock) Send(ctx context.Context, chatID int64, msg domain.OutMessage) error {
	if mock.SendFunc == nil {
		panic("senderMock.SendFunc: method is nil but sender.Send was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ChatID int64
		Msg    domain.OutMessage
	}{Ctx: ctx, ChatID: chatID, Msg: msg}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, chatID, msg)
}

func (mock *senderMock) SendCalls() []struct {
	Ctx    context.Context
	ChatID int64
	Msg    domain.OutMessage
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
