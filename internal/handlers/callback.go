package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/clubgate/clubgate-bot/internal/actions"
	"github.com/clubgate/clubgate-bot/internal/contextkeys"
	"github.com/clubgate/clubgate-bot/internal/messages"
	"github.com/clubgate/clubgate-bot/internal/plans"
)

func (h *Handlers) HandleClickButton(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	action, ok := contextkeys.GetAction(ctx)
	if !ok {
		// Payload did not parse; acknowledge so the button stops
		// spinning and leave everything else alone.
		_ = h.answerCallback(ctx, b, cb.ID, messages.CallbackUnknownAction())
		return
	}

	switch action.Kind {
	case actions.KindShowSubs:
		h.showSubscriptions(ctx, b, update, cb)
	case actions.KindShowPlans:
		h.showPlanMenu(ctx, b, cb)
	case actions.KindSelectPlan:
		h.showPaymentDetails(ctx, b, cb, action.Plan)
	case actions.KindConfirmPaid:
		h.confirmPaid(ctx, b, update, cb, action.Plan)
	case actions.KindApprove:
		h.approve(ctx, b, cb, action.UserID)
	case actions.KindReject:
		h.reject(ctx, b, cb, action.UserID)
	}
}

func (h *Handlers) showSubscriptions(ctx context.Context, b *bot.Bot, update *models.Update, cb *models.CallbackQuery) {
	_ = h.answerCallback(ctx, b, cb.ID, "")
	chatID := h.getChatIDFromUpdate(update)
	if chatID == 0 {
		return
	}

	info, err := h.svc.Status(displayName(&cb.From))
	if err != nil {
		h.log.Errorw("failed to look up subscription",
			"user_id", cb.From.ID, "err", err)
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      messages.ErrorDefault(),
			ParseMode: messages.ParseModeHTML,
		})
		return
	}
	if info != nil {
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   messages.SubscriptionInfo(info.TotalDays, info.DaysLeft),
		})
		return
	}

	kb := models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: messages.BtnGoToPlans, CallbackData: actions.ShowPlansData()}},
		},
	}
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        messages.NoSubscriptions(),
		ReplyMarkup: &kb,
	})
}

func (h *Handlers) showPlanMenu(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery) {
	_ = h.answerCallback(ctx, b, cb.ID, "")
	msg := cb.Message.Message
	if msg == nil {
		return
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(plans.All()))
	for _, p := range plans.All() {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: messages.PlanButton(p), CallbackData: actions.SelectPlanData(p.ID)},
		})
	}
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        messages.ChoosePlan(),
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: rows},
	})
	if err != nil {
		h.log.Warnw("failed to render plan menu", "chat_id", msg.Chat.ID, "err", err)
	}
}

func (h *Handlers) showPaymentDetails(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery, planID plans.ID) {
	_ = h.answerCallback(ctx, b, cb.ID, "")
	msg := cb.Message.Message
	if msg == nil {
		return
	}
	plan, ok := plans.ByID(planID)
	if !ok {
		return
	}

	kb := models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: messages.BtnPaid, CallbackData: actions.ConfirmPaidData(plan.ID)}},
			{{Text: messages.BtnCancel, CallbackData: actions.ShowPlansData()}},
		},
	}
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        messages.PaymentDetails(plan),
		ParseMode:   messages.ParseModeHTML,
		ReplyMarkup: &kb,
	})
	if err != nil {
		h.log.Warnw("failed to render payment details", "chat_id", msg.Chat.ID, "err", err)
	}
}

func (h *Handlers) confirmPaid(ctx context.Context, b *bot.Bot, update *models.Update, cb *models.CallbackQuery, planID plans.ID) {
	_ = h.answerCallback(ctx, b, cb.ID, "")
	chatID := h.getChatIDFromUpdate(update)
	if chatID == 0 {
		return
	}

	h.svc.ConfirmPaid(cb.From.ID, planID, displayName(&cb.From))
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   messages.SendReferencePrompt(),
	})
}

func (h *Handlers) approve(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery, userID int64) {
	if cb.From.ID != h.adminID {
		h.log.Warnw("approve pressed by non-admin", "from_id", cb.From.ID)
		_ = h.answerCallback(ctx, b, cb.ID, "")
		return
	}

	link, ok, err := h.svc.Approve(userID)
	if err != nil {
		h.log.Errorw("invite allocation failed", "user_id", userID, "err", err)
		_ = h.answerCallback(ctx, b, cb.ID, messages.CallbackError())
		return
	}

	if ok {
		kb := models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{
				{{Text: messages.BtnSubsAfterBuy, CallbackData: actions.ShowSubsData()}},
			},
		}
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      userID,
			Text:        messages.InviteDelivery(link),
			ReplyMarkup: &kb,
		})
		h.deleteReviewPrompt(ctx, b, cb)
		_ = h.answerCallback(ctx, b, cb.ID, messages.CallbackLinkSent())
		return
	}

	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   messages.NoInvitesLeft(),
	})
	h.deleteReviewPrompt(ctx, b, cb)
	_ = h.answerCallback(ctx, b, cb.ID, messages.CallbackNoLinksLeft())
}

func (h *Handlers) reject(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery, userID int64) {
	if cb.From.ID != h.adminID {
		h.log.Warnw("reject pressed by non-admin", "from_id", cb.From.ID)
		_ = h.answerCallback(ctx, b, cb.ID, "")
		return
	}

	kb := models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: messages.BtnBack, CallbackData: actions.ShowPlansData()}},
		},
	}
	_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      userID,
		Text:        messages.PaymentRejected(),
		ReplyMarkup: &kb,
	})
	h.deleteReviewPrompt(ctx, b, cb)
	_ = h.answerCallback(ctx, b, cb.ID, messages.CallbackRejectionSent())
}

func (h *Handlers) deleteReviewPrompt(ctx context.Context, b *bot.Bot, cb *models.CallbackQuery) {
	msg := cb.Message.Message
	if msg == nil {
		return
	}
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})
	if err != nil {
		h.log.Warnw("failed to delete review prompt", "message_id", msg.ID, "err", err)
	}
}
