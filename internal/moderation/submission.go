package moderation

import (
	"fmt"
	"strings"
	"time"
)

const postCommand = "/post"

// Submission живёт только на время обработки одного сообщения
type Submission struct {
	SubmitterID     int64
	SubmitterName   string
	RawText         string
	OriginMessageID int
}

type ActionKind string

const (
	// ActionRequestText — текст после /post пустой, переспросить автора
	ActionRequestText ActionKind = "request_text"
	// ActionPublish — пост записан в базу, отправить в канал и подтвердить
	ActionPublish ActionKind = "publish"
	// ActionReview — разослать предложение админам и подтвердить приём
	ActionReview ActionKind = "review"
)

// Action говорит транспорту, какие сообщения отправить после обработки
type Action struct {
	Kind         ActionKind
	Reply        string
	Text         string
	PostID       int64
	Review       *Review
	AdminIDs     []int64
	Notification string
}

type PostStore interface {
	Append(text string, publishedAt time.Time) (int64, error)
}

type Policy interface {
	IsAdmin(userID int64) bool
	AdminIDs() []int64
}

type Processor struct {
	policy  Policy
	posts   PostStore
	reviews *Reviews
	now     func() time.Time
}

func NewProcessor(policy Policy, posts PostStore, reviews *Reviews) *Processor {
	return &Processor{
		policy:  policy,
		posts:   posts,
		reviews: reviews,
		now:     time.Now,
	}
}

// HandleSubmission классифицирует команду /post. Пост админа сначала
// записывается в базу и только потом уходит в канал: при ошибке записи
// Action не возвращается и отправки в канал быть не должно.
func (p *Processor) HandleSubmission(sub Submission) (*Action, error) {
	text := ExtractText(sub.RawText)

	if text == "" {
		return &Action{
			Kind:  ActionRequestText,
			Reply: "Пожалуйста, добавьте текст после команды /post",
		}, nil
	}

	if p.policy.IsAdmin(sub.SubmitterID) {
		postID, err := p.posts.Append(text, p.now().Truncate(time.Minute))
		if err != nil {
			return nil, fmt.Errorf("Processor.HandleSubmission: %w", err)
		}

		return &Action{
			Kind:   ActionPublish,
			Reply:  "Пост опубликован!",
			Text:   text,
			PostID: postID,
		}, nil
	}

	review := &Review{
		ID: ReviewID{
			OriginMessageID: sub.OriginMessageID,
			SubmitterID:     sub.SubmitterID,
		},
		SubmitterID:   sub.SubmitterID,
		SubmitterName: sub.SubmitterName,
		Text:          text,
		Status:        StatusPending,
	}

	p.reviews.Register(review)

	return &Action{
		Kind:         ActionReview,
		Reply:        "Ваш пост отправлен администраторам на проверку!",
		Text:         text,
		Review:       review,
		AdminIDs:     p.policy.AdminIDs(),
		Notification: ReviewNotification(sub.SubmitterName, text),
	}, nil
}

// ExtractText убирает команду /post и пробелы вокруг текста поста
func ExtractText(raw string) string {
	text := strings.TrimPrefix(strings.TrimSpace(raw), postCommand)

	return strings.TrimSpace(text)
}
