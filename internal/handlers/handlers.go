package handlers

import (
	"context"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/clubgate/clubgate-bot/internal/contextkeys"
	"github.com/clubgate/clubgate-bot/internal/payments"
)

type Handlers struct {
	adminID int64
	svc     *payments.Service
	log     *zap.SugaredLogger
}

func NewHandlers(adminID int64, svc *payments.Service, log *zap.SugaredLogger) *Handlers {
	return &Handlers{
		adminID: adminID,
		svc:     svc,
		log:     log,
	}
}

func (h *Handlers) MainHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	messageType, _ := contextkeys.GetMessageType(ctx)

	switch messageType {
	case contextkeys.MessageTypeCommand:
		h.HandleCommand(ctx, b, update)
	case contextkeys.MessageTypeText:
		h.HandleText(ctx, b, update)
	case contextkeys.MessageTypeClickButton:
		h.HandleClickButton(ctx, b, update)
	default:
		h.log.Debugw("ignoring update", "type", messageType)
	}
}

// displayName returns the user's handle, falling back to the numeric ID
// for accounts without a public username. The ledger is keyed by this
// value, so the fallback keeps such users addressable.
func displayName(u *models.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	return strconv.FormatInt(u.ID, 10)
}

func (h *Handlers) getChatIDFromUpdate(update *models.Update) int64 {
	if update == nil {
		return 0
	}
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil {
		if update.CallbackQuery.Message.Message != nil {
			return update.CallbackQuery.Message.Message.Chat.ID
		}
		if update.CallbackQuery.Message.InaccessibleMessage != nil {
			return update.CallbackQuery.Message.InaccessibleMessage.Chat.ID
		}
	}
	return 0
}

func (h *Handlers) answerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) error {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	return err
}
