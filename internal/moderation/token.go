package moderation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedToken = errors.New("malformed decision token")

type DecisionKind string

const (
	DecisionApprove DecisionKind = "approve"
	DecisionReject  DecisionKind = "reject"
)

// Decision — разобранный callback-токен кнопки "Одобрить"/"Отклонить".
// Пара (OriginMessageID, SubmitterID) и есть идентификатор предложения,
// отдельный ключ не выделяется.
type Decision struct {
	Kind            DecisionKind
	OriginMessageID int
	SubmitterID     int64
}

type ReviewID struct {
	OriginMessageID int
	SubmitterID     int64
}

func (d Decision) ReviewID() ReviewID {
	return ReviewID{
		OriginMessageID: d.OriginMessageID,
		SubmitterID:     d.SubmitterID,
	}
}

// Token кодирует решение в callback data вида "approve_123_456"
func (d Decision) Token() string {
	return fmt.Sprintf("%s_%d_%d", d.Kind, d.OriginMessageID, d.SubmitterID)
}

func ParseDecision(data string) (Decision, error) {
	parts := strings.Split(data, "_")
	if len(parts) != 3 {
		return Decision{}, fmt.Errorf("ParseDecision: %q: %w", data, ErrMalformedToken)
	}

	kind := DecisionKind(parts[0])
	if kind != DecisionApprove && kind != DecisionReject {
		return Decision{}, fmt.Errorf("ParseDecision: unknown kind %q: %w", parts[0], ErrMalformedToken)
	}

	messageID, err := strconv.Atoi(parts[1])
	if err != nil {
		return Decision{}, fmt.Errorf("ParseDecision: message id %q: %w", parts[1], ErrMalformedToken)
	}

	submitterID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("ParseDecision: submitter id %q: %w", parts[2], ErrMalformedToken)
	}

	return Decision{
		Kind:            kind,
		OriginMessageID: messageID,
		SubmitterID:     submitterID,
	}, nil
}
