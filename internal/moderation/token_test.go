package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionTokenRoundTrip(t *testing.T) {
	decision := Decision{
		Kind:            DecisionApprove,
		OriginMessageID: 123,
		SubmitterID:     456,
	}

	assert.Equal(t, "approve_123_456", decision.Token())

	parsed, err := ParseDecision(decision.Token())
	require.NoError(t, err)
	assert.Equal(t, decision, parsed)
	assert.Equal(t, ReviewID{OriginMessageID: 123, SubmitterID: 456}, parsed.ReviewID())
}

func TestParseDecisionReject(t *testing.T) {
	parsed, err := ParseDecision("reject_77_42")
	require.NoError(t, err)
	assert.Equal(t, DecisionReject, parsed.Kind)
	assert.Equal(t, 77, parsed.OriginMessageID)
	assert.Equal(t, int64(42), parsed.SubmitterID)
}

func TestParseDecisionMalformed(t *testing.T) {
	tests := []string{
		"",
		"approve",
		"approve_123",
		"approve_123_456_789",
		"publish_123_456",
		"approve_abc_456",
		"approve_123_def",
	}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := ParseDecision(data)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}
