package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/avdeevdanil/channel_post_bot/internal/auth"
	"github.com/avdeevdanil/channel_post_bot/internal/db"
	"github.com/avdeevdanil/channel_post_bot/internal/moderation"
)

const recentPostsLimit = 5

type BotService struct {
	botAPI    *tgbotapi.BotAPI
	processor *moderation.Processor
	reviews   *moderation.Reviews
	policy    *auth.Policy
	postRepo  *db.PostRepository
	channelID int64
	logger    *logrus.Logger
}

func New(
	botAPI *tgbotapi.BotAPI,
	processor *moderation.Processor,
	reviews *moderation.Reviews,
	policy *auth.Policy,
	postRepo *db.PostRepository,
	channelID int64,
	logger *logrus.Logger,
) *BotService {
	return &BotService{
		botAPI:    botAPI,
		processor: processor,
		reviews:   reviews,
		policy:    policy,
		postRepo:  postRepo,
		channelID: channelID,
		logger:    logger,
	}
}

func (b *BotService) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleDecision(update.CallbackQuery)
			continue
		}

		if update.Message == nil || update.Message.From == nil {
			continue
		}

		msg := update.Message

		switch {
		case msg.Text == "/start":
			b.handleStart(msg.Chat.ID)
		case msg.Text == "Предложить идею":
			b.handleSuggestIdea(msg.Chat.ID)
		case strings.HasPrefix(msg.Text, "/post"):
			b.handlePost(msg)
		case msg.Text == "/last":
			b.handleRecentPosts(msg.Chat.ID, msg.From.ID)
		}
	}
}

func (b *BotService) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"Привет! Я бот для публикации постов в канале.\n"+
			"Нажми на кнопку 'Предложить идею' или используй команду /post, чтобы предложить свой пост.")
	msg.ReplyMarkup = MainMenu()
	b.send(msg)
}

func (b *BotService) handleSuggestIdea(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"Пожалуйста, напиши свой пост, начиная с команды /post.\n"+
			"Например: /post Это мой пост для канала!")
	b.send(msg)
}

func (b *BotService) handlePost(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	sub := moderation.Submission{
		SubmitterID:     msg.From.ID,
		SubmitterName:   displayName(msg.From),
		RawText:         msg.Text,
		OriginMessageID: msg.MessageID,
	}

	action, err := b.processor.HandleSubmission(sub)
	if err != nil {
		b.logger.WithFields(logrus.Fields{
			"chat_id": chatID,
			"error":   err,
		}).Error("cannot store post")

		b.send(tgbotapi.NewMessage(chatID, "Не удалось опубликовать пост. Попробуйте позже."))
		return
	}

	switch action.Kind {
	case moderation.ActionRequestText:
		b.send(tgbotapi.NewMessage(chatID, action.Reply))

	case moderation.ActionPublish:
		// Пост уже в базе; неудачная отправка в канал решение не отменяет
		if _, err := b.botAPI.Send(tgbotapi.NewMessage(b.channelID, action.Text)); err != nil {
			b.logger.WithFields(logrus.Fields{
				"post_id": action.PostID,
				"error":   err,
			}).Error("cannot publish post to channel")
		}

		b.send(tgbotapi.NewMessage(chatID, action.Reply))

	case moderation.ActionReview:
		keyboard := ReviewKeyboard(action.Review.ID)

		for _, adminID := range action.AdminIDs {
			notification := tgbotapi.NewMessage(adminID, action.Notification)
			notification.ReplyMarkup = keyboard

			if _, err := b.botAPI.Send(notification); err != nil {
				b.logger.WithFields(logrus.Fields{
					"admin_id": adminID,
					"error":    err,
				}).Warn("cannot notify admin about suggestion")
			}
		}

		b.send(tgbotapi.NewMessage(chatID, action.Reply))
	}
}

func (b *BotService) handleDecision(callback *tgbotapi.CallbackQuery) {
	decision, err := moderation.ParseDecision(callback.Data)
	if err != nil {
		b.logger.WithFields(logrus.Fields{
			"data":  callback.Data,
			"error": err,
		}).Warn("malformed callback token")

		b.answer(callback.ID, "")
		return
	}

	if callback.Message == nil {
		b.answer(callback.ID, "")
		return
	}

	outcome := b.reviews.Decide(decision, callback.From.ID, callback.Message.Text)

	switch outcome.Kind {
	case moderation.OutcomeUnauthorized:
		b.answer(callback.ID, moderation.UnauthorizedNotice(decision.Kind))

	case moderation.OutcomeAlreadyDecided:
		b.answer(callback.ID, "Решение по этому посту уже принято")

	case moderation.OutcomeDecided:
		// Автор мог заблокировать бота; решение всё равно остаётся в силе
		if _, err := b.botAPI.Send(tgbotapi.NewMessage(outcome.SubmitterID, outcome.SubmitterNotice)); err != nil {
			b.logger.WithFields(logrus.Fields{
				"submitter_id": outcome.SubmitterID,
				"error":        err,
			}).Warn("cannot notify submitter about decision")
		}

		edit := tgbotapi.NewEditMessageText(callback.Message.Chat.ID, callback.Message.MessageID, outcome.Notification)
		if _, err := b.botAPI.Send(edit); err != nil {
			b.logger.WithFields(logrus.Fields{
				"chat_id":    callback.Message.Chat.ID,
				"message_id": callback.Message.MessageID,
				"error":      err,
			}).Warn("cannot update review notification")
		}

		b.answer(callback.ID, "")
	}
}

func (b *BotService) handleRecentPosts(chatID, userID int64) {
	if !b.policy.IsAdmin(userID) {
		b.send(tgbotapi.NewMessage(chatID, "Доступ запрещен"))
		return
	}

	posts, err := b.postRepo.GetRecent(recentPostsLimit)
	if err != nil {
		b.logger.WithFields(logrus.Fields{
			"chat_id": chatID,
			"error":   err,
		}).Error("cannot load recent posts")

		b.send(tgbotapi.NewMessage(chatID, "Ошибка при получении постов"))
		return
	}

	if len(posts) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Опубликованных постов пока нет"))
		return
	}

	var sb strings.Builder

	for _, post := range posts {
		fmt.Fprintf(&sb, "#%d [%s]\n%s\n---\n", post.ID, post.PublishedAt.Format("02.01.2006 15:04"), post.Text)
	}

	b.send(tgbotapi.NewMessage(chatID, sb.String()))
}

func (b *BotService) send(msg tgbotapi.MessageConfig) {
	if _, err := b.botAPI.Send(msg); err != nil {
		b.logger.WithFields(logrus.Fields{
			"chat_id": msg.ChatID,
			"error":   err,
		}).Warn("cannot send message")
	}
}

func (b *BotService) answer(callbackID, text string) {
	if _, err := b.botAPI.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.WithField("error", err).Warn("cannot answer callback query")
	}
}

func displayName(user *tgbotapi.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.UserName
	}

	return name
}
