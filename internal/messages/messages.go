package messages

import (
	"fmt"
	"strings"

	"github.com/clubgate/clubgate-bot/internal/plans"
)

const ParseModeHTML = "HTML"

// Payment addresses shown in the requisites block.
const (
	AddressERC20 = "0x5b14bf001d58a8b4fae027fb670874e43bf6030e"
	AddressTRC20 = "TURQhUFCVx4Z3aDpKgpA1NB1moGB3maRbn"
	AddressSOL   = "2pZq9xPShNmuqt9QoaJiw5hAkD1LU5pue6bkmbnActue"
)

// Inline button captions.
const (
	BtnSubscriptions = "📋 Подписки"
	BtnPlans         = "💸 Тарифы"
	BtnGoToPlans     = "📋 Перейти к тарифам"
	BtnPaid          = "✅ Я оплатил"
	BtnCancel        = "❌ Отмена"
	BtnBack          = "🔙 Назад"
	BtnSubsAfterBuy  = "📦 Подписки"
	BtnApprove       = "Выдать ссылку"
	BtnReject        = "Ошибка"
)

func Escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(strings.TrimSpace(s))
}

func Welcome() string {
	return "Добро пожаловать! Выберите действие:"
}

func SubscriptionInfo(totalDays, daysLeft int) string {
	return fmt.Sprintf(
		"Ваши подписки:\nПодписка на %d дней.\nПодписка истечет через %d дней.",
		totalDays, daysLeft,
	)
}

func NoSubscriptions() string {
	return "У вас нет активных подписок."
}

func ChoosePlan() string {
	return "Выберите желаемый тарифный план:"
}

func PlanButton(p plans.Plan) string {
	return fmt.Sprintf("%s - %d$", p.Label, p.Price)
}

func PaymentDetails(p plans.Plan) string {
	return fmt.Sprintf(
		"<b>%d дней</b>\nЦена: %d$\n\n"+
			"Реквизиты:\n\n"+
			"<b>USDT/ETH (ERC20/BEP20)</b>\n<code>%s</code>\n\n"+
			"<b>USDT (TRC20)</b>\n<code>%s</code>\n\n"+
			"<b>SOL</b>\n<code>%s</code>\n\n"+
			"Сохраните хэш транзакции для дальнейшего подтверждения.",
		p.DurationDays, p.Price, AddressERC20, AddressTRC20, AddressSOL,
	)
}

func SendReferencePrompt() string {
	return "Отправьте ваш хэш транзакции для проверки"
}

func ReferenceAccepted() string {
	return "Отлично! Ваша транзакция проверяется. Обычно проверка занимает не более суток."
}

func UnexpectedMessage() string {
	return "Неожиданное сообщение. Начните с /start"
}

func AdminReview(username string, p plans.Plan, reference, claimID string) string {
	return fmt.Sprintf(
		"Новая оплата!\n"+
			"Пользователь: @%s\n"+
			"Тип подписки: %d дней\n"+
			"Цена: %d$\n"+
			"Хэш: %s\n"+
			"Заявка: <code>%s</code>",
		Escape(username), p.DurationDays, p.Price, Escape(reference), Escape(claimID),
	)
}

func InviteDelivery(link string) string {
	return fmt.Sprintf(
		"Спасибо за оформление подписки! Твоя ссылка: %s\nРады видеть тебя в нашем комьюнити!",
		link,
	)
}

func NoInvitesLeft() string {
	return "Извините, сейчас нет доступных ссылок. Свяжитесь с админом."
}

func PaymentRejected() string {
	return "Произошла ошибка при проверке транзакции. Попробуйте позже."
}

func ErrorDefault() string {
	return "🚫 <b>Ошибка</b>\nПопробуйте ещё раз."
}

func ErrorUnknownCommand() string {
	return "❓ <b>Команда не найдена</b>"
}

// Callback acknowledgements render as plain toasts, no HTML.

func CallbackUnknownAction() string {
	return "Неизвестная команда."
}

func CallbackError() string {
	return "Ошибка. Попробуйте ещё раз."
}

// Acknowledgements shown to the admin after resolving a review.

func CallbackLinkSent() string {
	return "Ссылка отправлена."
}

func CallbackNoLinksLeft() string {
	return "Ссылки закончились."
}

func CallbackRejectionSent() string {
	return "Пользователю отправлено сообщение об ошибке."
}
