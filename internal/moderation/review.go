package moderation

import (
	"strings"
	"sync"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Review — предложение поста, ожидающее решения админа. Текст поста на время
// ожидания живёт в отправленном админам сообщении, отдельно не сохраняется.
type Review struct {
	ID            ReviewID
	SubmitterID   int64
	SubmitterName string
	Text          string
	Status        Status
}

type OutcomeKind string

const (
	OutcomeDecided        OutcomeKind = "decided"
	OutcomeAlreadyDecided OutcomeKind = "already_decided"
	OutcomeUnauthorized   OutcomeKind = "unauthorized"
)

// Outcome описывает, что транспорт должен сделать после решения админа.
// Для OutcomeDecided заполнены текст для автора и новый текст уведомления.
type Outcome struct {
	Kind            OutcomeKind
	Status          Status
	SubmitterID     int64
	SubmitterNotice string
	Notification    string
}

type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// Reviews отслеживает статусы предложений, чтобы повторное нажатие кнопки
// (или второй админ после первого) не обрабатывалось заново.
type Reviews struct {
	mu      sync.Mutex
	policy  AdminChecker
	entries map[ReviewID]*Review
}

func NewReviews(policy AdminChecker) *Reviews {
	return &Reviews{
		policy:  policy,
		entries: make(map[ReviewID]*Review),
	}
}

// Register добавляет новое предложение в статусе pending
func (r *Reviews) Register(review *Review) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[review.ID] = review
}

// Decide применяет решение админа. renderedText — текущий текст уведомления,
// из него восстанавливается текст поста. Переход pending -> approved/rejected
// выполняется не более одного раза; повторные решения не меняют статус и не
// порождают побочных эффектов.
func (r *Reviews) Decide(d Decision, actingAdminID int64, renderedText string) Outcome {
	if !r.policy.IsAdmin(actingAdminID) {
		return Outcome{Kind: OutcomeUnauthorized}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.entries[d.ReviewID()]
	if !ok {
		// После перезапуска процесса реестр пуст, но уведомление с кнопками
		// живо. Восстанавливаем предложение из токена и текста сообщения.
		review = &Review{
			ID:          d.ReviewID(),
			SubmitterID: d.SubmitterID,
			Text:        ExtractSuggestedText(renderedText),
			Status:      statusFromRendered(renderedText),
		}
		r.entries[review.ID] = review
	}

	if review.Status != StatusPending {
		return Outcome{Kind: OutcomeAlreadyDecided, Status: review.Status}
	}

	switch d.Kind {
	case DecisionApprove:
		review.Status = StatusApproved

		return Outcome{
			Kind:            OutcomeDecided,
			Status:          StatusApproved,
			SubmitterID:     review.SubmitterID,
			SubmitterNotice: "Ваш пост одобрен! Администратор скоро его опубликует.",
			Notification:    ApprovedNotification(renderedText, review.Text),
		}
	default:
		review.Status = StatusRejected

		return Outcome{
			Kind:            OutcomeDecided,
			Status:          StatusRejected,
			SubmitterID:     review.SubmitterID,
			SubmitterNotice: "Ваш пост был отклонен.",
			Notification:    RejectedNotification(renderedText),
		}
	}
}

// statusFromRendered распознаёт уже проставленную строку статуса в
// уведомлении, чтобы не обработать решение второй раз после перезапуска
func statusFromRendered(renderedText string) Status {
	switch {
	case strings.Contains(renderedText, "Статус: Одобрен"):
		return StatusApproved
	case strings.Contains(renderedText, "Статус: Отклонен"):
		return StatusRejected
	default:
		return StatusPending
	}
}

// ReviewNotification — текст уведомления админу о новом предложении
func ReviewNotification(submitterName, postText string) string {
	return "Новое предложение поста от " + submitterName + ":\n\n" + postText
}

// ExtractSuggestedText достаёт текст поста из уведомления админу
func ExtractSuggestedText(renderedText string) string {
	parts := strings.SplitN(renderedText, "\n\n", 2)
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}

func ApprovedNotification(renderedText, postText string) string {
	return renderedText + "\n\nСтатус: Одобрен ✅\n\nДля публикации используйте команду:\n/post " + postText
}

func RejectedNotification(renderedText string) string {
	return renderedText + "\n\nСтатус: Отклонен ❌"
}

// UnauthorizedNotice — эфемерный ответ на нажатие кнопки без прав
func UnauthorizedNotice(kind DecisionKind) string {
	if kind == DecisionApprove {
		return "У вас нет прав для одобрения постов"
	}

	return "У вас нет прав для отклонения постов"
}
