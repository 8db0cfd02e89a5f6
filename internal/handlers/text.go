package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/clubgate/clubgate-bot/internal/actions"
	"github.com/clubgate/clubgate-bot/internal/messages"
	"github.com/clubgate/clubgate-bot/internal/payments"
)

// HandleText treats any free-text message as a transaction reference.
// Whether it actually is one depends on the user having a pending
// payment; otherwise the message is out-of-band.
func (h *Handlers) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID
	reference := strings.TrimSpace(update.Message.Text)
	if reference == "" {
		return
	}

	claim, err := h.svc.SubmitReference(update.Message.From.ID, reference)
	if errors.Is(err, payments.ErrNoPendingPayment) {
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   messages.UnexpectedMessage(),
		})
		return
	}
	if err != nil {
		h.log.Errorw("failed to register payment claim",
			"user_id", update.Message.From.ID, "err", err)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}

	reviewKb := models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: messages.BtnApprove, CallbackData: actions.ApproveData(claim.UserID)}},
			{{Text: messages.BtnReject, CallbackData: actions.RejectData(claim.UserID)}},
		},
	}
	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      h.adminID,
		Text:        messages.AdminReview(claim.Username, claim.Plan, claim.TxReference, claim.ID),
		ParseMode:   messages.ParseModeHTML,
		ReplyMarkup: &reviewKb,
	})
	if err != nil {
		h.log.Errorw("failed to send review prompt to admin",
			"claim_id", claim.ID, "err", err)
	}

	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   messages.ReferenceAccepted(),
	})
}
