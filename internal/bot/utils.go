package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avdeevdanil/channel_post_bot/internal/moderation"
)

func MainMenu() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Предложить идею"),
		),
	)
	keyboard.ResizeKeyboard = true

	return keyboard
}

// ReviewKeyboard — кнопки решения; callback data несёт идентификатор
// предложения (id исходного сообщения + id автора)
func ReviewKeyboard(reviewID moderation.ReviewID) tgbotapi.InlineKeyboardMarkup {
	approve := moderation.Decision{
		Kind:            moderation.DecisionApprove,
		OriginMessageID: reviewID.OriginMessageID,
		SubmitterID:     reviewID.SubmitterID,
	}
	reject := moderation.Decision{
		Kind:            moderation.DecisionReject,
		OriginMessageID: reviewID.OriginMessageID,
		SubmitterID:     reviewID.SubmitterID,
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Одобрить", approve.Token()),
			tgbotapi.NewInlineKeyboardButtonData("Отклонить", reject.Token()),
		),
	)
}
