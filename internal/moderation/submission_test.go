package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePolicy struct {
	adminIDs []int64
}

func (p *fakePolicy) IsAdmin(userID int64) bool {
	for _, id := range p.adminIDs {
		if id == userID {
			return true
		}
	}

	return false
}

func (p *fakePolicy) AdminIDs() []int64 {
	return p.adminIDs
}

type fakeStore struct {
	appends []string
	lastAt  time.Time
	nextID  int64
	err     error
}

func (s *fakeStore) Append(text string, publishedAt time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}

	s.appends = append(s.appends, text)
	s.lastAt = publishedAt
	s.nextID++

	return s.nextID, nil
}

func newTestProcessor(store *fakeStore) (*Processor, *Reviews) {
	policy := &fakePolicy{adminIDs: []int64{1}}
	reviews := NewReviews(policy)

	return NewProcessor(policy, store, reviews), reviews
}

func TestHandleSubmissionAdminPublishes(t *testing.T) {
	store := &fakeStore{}
	processor, _ := newTestProcessor(store)

	action, err := processor.HandleSubmission(Submission{
		SubmitterID:     1,
		SubmitterName:   "Admin",
		RawText:         "/post Hello channel",
		OriginMessageID: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, ActionPublish, action.Kind)
	assert.Equal(t, "Hello channel", action.Text)
	assert.Equal(t, "Пост опубликован!", action.Reply)
	assert.Equal(t, int64(1), action.PostID)

	require.Len(t, store.appends, 1)
	assert.Equal(t, "Hello channel", store.appends[0])
	assert.Zero(t, store.lastAt.Second(), "timestamp must be minute-truncated")
}

func TestHandleSubmissionNonAdminGoesToReview(t *testing.T) {
	store := &fakeStore{}
	processor, reviews := newTestProcessor(store)

	action, err := processor.HandleSubmission(Submission{
		SubmitterID:     42,
		SubmitterName:   "Ann",
		RawText:         "/post Buy my thing",
		OriginMessageID: 77,
	})

	require.NoError(t, err)
	assert.Equal(t, ActionReview, action.Kind)
	assert.Empty(t, store.appends)
	assert.Equal(t, []int64{1}, action.AdminIDs)
	assert.Equal(t, "Ваш пост отправлен администраторам на проверку!", action.Reply)
	assert.Contains(t, action.Notification, "Ann")
	assert.Contains(t, action.Notification, "Buy my thing")

	require.NotNil(t, action.Review)
	assert.Equal(t, StatusPending, action.Review.Status)
	assert.Equal(t, ReviewID{OriginMessageID: 77, SubmitterID: 42}, action.Review.ID)

	outcome := reviews.Decide(Decision{
		Kind:            DecisionReject,
		OriginMessageID: 77,
		SubmitterID:     42,
	}, 1, action.Notification)
	assert.Equal(t, OutcomeDecided, outcome.Kind, "review must be registered")
}

func TestHandleSubmissionEmptyText(t *testing.T) {
	tests := []struct {
		name        string
		submitterID int64
		rawText     string
	}{
		{name: "bare command from admin", submitterID: 1, rawText: "/post"},
		{name: "bare command from user", submitterID: 42, rawText: "/post"},
		{name: "trailing whitespace only", submitterID: 42, rawText: "/post   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			processor, _ := newTestProcessor(store)

			action, err := processor.HandleSubmission(Submission{
				SubmitterID: tt.submitterID,
				RawText:     tt.rawText,
			})

			require.NoError(t, err)
			assert.Equal(t, ActionRequestText, action.Kind)
			assert.Equal(t, "Пожалуйста, добавьте текст после команды /post", action.Reply)
			assert.Empty(t, store.appends)
		})
	}
}

func TestHandleSubmissionStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &fakeStore{err: storeErr}
	processor, _ := newTestProcessor(store)

	action, err := processor.HandleSubmission(Submission{
		SubmitterID: 1,
		RawText:     "/post Hello channel",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, action, "channel send must not be instructed when the store append failed")
}

func TestExtractText(t *testing.T) {
	assert.Equal(t, "Hello channel", ExtractText("/post Hello channel"))
	assert.Equal(t, "Hello channel", ExtractText("  /post   Hello channel  "))
	assert.Equal(t, "", ExtractText("/post"))
	assert.Equal(t, "", ExtractText("/post    "))
}
