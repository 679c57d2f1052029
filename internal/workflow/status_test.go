package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(ts []Transition) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Label)
	}
	return out
}

func TestTransitions_Started(t *testing.T) {
	got := labels(Transitions(StatusStarted))
	assert.ElementsMatch(t, []string{"Submit for Review", "Skip"}, got)
}

func TestTransitions_SubmittedForReview(t *testing.T) {
	got := labels(Transitions(StatusSubmittedForReview))
	assert.ElementsMatch(t, []string{"Mark Awaiting Response", "Approve", "Decline"}, got)
}

func TestTransitions_AwaitingResponse(t *testing.T) {
	got := labels(Transitions(StatusAwaitingResponse))
	assert.ElementsMatch(t, []string{"Approve", "Decline"}, got)
}

func TestTransitions_TerminalStatusesOfferNothing(t *testing.T) {
	for _, s := range []StepStatus{StatusApproved, StatusDeclined, StatusSkipped} {
		assert.Empty(t, Transitions(s), "status %q must be terminal", s)
		assert.True(t, IsTerminal(s))
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to StepStatus
		want     bool
	}{
		{StatusStarted, StatusSubmittedForReview, true},
		{StatusStarted, StatusSkipped, true},
		{StatusStarted, StatusApproved, false},
		{StatusSubmittedForReview, StatusAwaitingResponse, true},
		{StatusSubmittedForReview, StatusApproved, true},
		{StatusSubmittedForReview, StatusDeclined, true},
		{StatusAwaitingResponse, StatusApproved, true},
		{StatusAwaitingResponse, StatusDeclined, true},
		{StatusAwaitingResponse, StatusSkipped, false},
		{StatusApproved, StatusDeclined, false},
		{StatusSkipped, StatusStarted, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestNormalize_CanonicalVocabulary(t *testing.T) {
	for _, s := range []StepStatus{
		StatusStarted, StatusSubmittedForReview, StatusAwaitingResponse,
		StatusApproved, StatusDeclined, StatusSkipped,
	} {
		got, ok := Normalize(string(s))
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestNormalize_LegacyVocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want StepStatus
	}{
		{"not-started", StatusStarted},
		{"awaiting", StatusAwaitingResponse},
		{"submitted", StatusSubmittedForReview},
		{"approved", StatusApproved},
		{"declined", StatusDeclined},
	}
	for _, tc := range tests {
		got, ok := Normalize(tc.raw)
		require.True(t, ok, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got)
	}
}

func TestNormalize_Unknown(t *testing.T) {
	_, ok := Normalize("banana")
	assert.False(t, ok)
}
