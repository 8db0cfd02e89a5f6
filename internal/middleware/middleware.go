package middleware

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/clubgate/clubgate-bot/internal/actions"
	"github.com/clubgate/clubgate-bot/internal/contextkeys"
)

// Classifier tags every update with a message type and, for callback
// queries, the parsed action, so handlers never touch raw payloads.
type Classifier struct {
	log *zap.SugaredLogger
}

func NewClassifier(log *zap.SugaredLogger) *Classifier {
	return &Classifier{log: log}
}

func (m *Classifier) ClassifyUpdate(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		next(m.classify(ctx, update), b, update)
	}
}

func (m *Classifier) classify(ctx context.Context, update *models.Update) context.Context {
	if update.CallbackQuery != nil && update.CallbackQuery.Data != "" {
		ctx = contextkeys.WithMessageType(ctx, contextkeys.MessageTypeClickButton)
		ctx = contextkeys.WithCallbackData(ctx, update.CallbackQuery.Data)
		action, err := actions.Parse(update.CallbackQuery.Data)
		if err != nil {
			m.log.Warnw("unparseable callback payload",
				"data", update.CallbackQuery.Data, "err", err)
			return ctx
		}
		return contextkeys.WithAction(ctx, action)
	}

	if update.Message != nil && update.Message.Text != "" {
		if strings.HasPrefix(update.Message.Text, "/") {
			return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeCommand)
		}
		return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeText)
	}

	return contextkeys.WithMessageType(ctx, contextkeys.MessageTypeUnknown)
}
