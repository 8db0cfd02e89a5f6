package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/clubgate/clubgate-bot/internal/actions"
	"github.com/clubgate/clubgate-bot/internal/messages"
)

func (h *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	fields := strings.Fields(strings.TrimSpace(update.Message.Text))
	if len(fields) == 0 {
		return
	}
	cmd := fields[0]
	if strings.Contains(cmd, "@") {
		cmd = strings.SplitN(cmd, "@", 2)[0]
	}

	switch cmd {
	case "/start":
		h.sendMainMenu(ctx, b, update.Message.Chat.ID)
	default:
		_, _ = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    update.Message.Chat.ID,
			Text:      messages.ErrorUnknownCommand(),
			ParseMode: messages.ParseModeHTML,
		})
	}
}

func (h *Handlers) sendMainMenu(ctx context.Context, b *bot.Bot, chatID int64) {
	kb := models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: messages.BtnSubscriptions, CallbackData: actions.ShowSubsData()}},
			{{Text: messages.BtnPlans, CallbackData: actions.ShowPlansData()}},
		},
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        messages.Welcome(),
		ReplyMarkup: &kb,
	})
	if err != nil {
		h.log.Warnw("failed to send main menu", "chat_id", chatID, "err", err)
	}
}
