package admin

import (
	"context"
	"github.com/surovp/tg-bot-feedback/internal/domain"
	"sync"
)

var _ messenger = &messengerMock{}

type messengerMock struct {
	AnswerCallbackFunc func(ctx context.Context, callbackID string, text string) error
	EditMessageFunc    func(ctx context.Context, chatID int64, messageID int, msg domain.OutMessage) error
	SendFunc           func(ctx context.Context, chatID int64, msg domain.OutMessage) error

	calls struct {
		AnswerCallback []struct {
			Ctx        context.Context
			CallbackID string
			Text       string
		}
		EditMessage []struct {
			Ctx       context.Context
			ChatID    int64
			MessageID int
			Msg       domain.OutMessage
		}
		Send []struct {
			Ctx    context.Context
			ChatID int64
			Msg    domain.OutMessage
		}
	}
	lockAnswerCallback sync.RWMutex
	lockEditMessage    sync.RWMutex
	lockSend           sync.RWMutex
}

func (mock *messengerMock) AnswerCallback(ctx context.Context, callbackID string, text string) error {
	if mock.AnswerCallbackFunc == nil {
		panic("messengerMock.AnswerCallbackFunc: method is nil but messenger.AnswerCallback was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CallbackID string
		Text       string
	}{Ctx: ctx, CallbackID: callbackID, Text: text}
	mock.lockAnswerCallback.Lock()
	mock.calls.AnswerCallback = append(mock.calls.AnswerCallback, callInfo)
	mock.lockAnswerCallback.Unlock()
	return mock.AnswerCallbackFunc(ctx, callbackID, text)
}

func (mock *messengerMock) AnswerCallbackCalls() []struct {
	Ctx        context.Context
	CallbackID string
	Text       string
} {
	mock.lockAnswerCallback.RLock()
	calls := mock.calls.AnswerCallback
	mock.lockAnswerCallback.RUnlock()
	return calls
}

func (mock *messengerMock) EditMessage(ctx context.Context, chatID int64, messageID int, msg domain.OutMessage) error {
	if mock.EditMessageFunc == nil {
		panic("messengerMock.EditMessageFunc: method is nil but messenger.EditMessage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChatID    int64
		MessageID int
		Msg       domain.OutMessage
	}{Ctx: ctx, ChatID: chatID, MessageID: messageID, Msg: msg}
	mock.lockEditMessage.Lock()
	mock.calls.EditMessage = append(mock.calls.EditMessage, callInfo)
	mock.lockEditMessage.Unlock()
	return mock.EditMessageFunc(ctx, chatID, messageID, msg)
}

func (mock *messengerMock) EditMessageCalls() []struct {
	Ctx       context.Context
	ChatID    int64
	MessageID int
	Msg       domain.OutMessage
} {
	mock.lockEditMessage.RLock()
	calls := mock.calls.EditMessage
	mock.lockEditMessage.RUnlock()
	return calls
}

func (mock *messengerMock) Send(ctx context.Context, chatID int64, msg domain.OutMessage) error {
	if mock.SendFunc == nil {
		panic("messengerMock.SendFunc: method is nil but messenger.Send was just called")
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

func (mock *messengerMock) SendCalls() []struct {
	Ctx    context.Context
	ChatID int64
	Msg    domain.OutMessage
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
