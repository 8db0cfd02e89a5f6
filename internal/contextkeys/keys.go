package contextkeys

import (
	"context"

	"github.com/clubgate/clubgate-bot/internal/actions"
)

type messageTypeKey struct{}
type actionKey struct{}
type callbackDataKey struct{}

type MessageType string

const (
	MessageTypeText        MessageType = "text"
	MessageTypeCommand     MessageType = "command"
	MessageTypeClickButton MessageType = "clickButton"
	MessageTypeUnknown     MessageType = "unknown"
)

func WithMessageType(ctx context.Context, msgType MessageType) context.Context {
	return context.WithValue(ctx, messageTypeKey{}, msgType)
}

func GetMessageType(ctx context.Context) (MessageType, bool) {
	v := ctx.Value(messageTypeKey{})
	if v == nil {
		return MessageTypeUnknown, false
	}
	return v.(MessageType), true
}

func WithAction(ctx context.Context, action actions.Action) context.Context {
	return context.WithValue(ctx, actionKey{}, action)
}

func GetAction(ctx context.Context) (actions.Action, bool) {
	v := ctx.Value(actionKey{})
	if v == nil {
		return actions.Action{}, false
	}
	return v.(actions.Action), true
}

func WithCallbackData(ctx context.Context, data string) context.Context {
	return context.WithValue(ctx, callbackDataKey{}, data)
}

func GetCallbackData(ctx context.Context) (string, bool) {
	v := ctx.Value(callbackDataKey{})
	if v == nil {
		return "", false
	}
	return v.(string), true
}
