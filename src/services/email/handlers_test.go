package email

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, subject, html string
	err               error
}

func (s *fakeSender) Send(to, subject, html string) error {
	s.to, s.subject, s.html = to, subject, html
	return s.err
}

func TestHandleFeedbackApproved(t *testing.T) {
	sender := &fakeSender{}
	task, err := NewFeedbackApprovedTask(FeedbackApprovedPayload{
		FeedbackID:     "abc",
		To:             "jane@example.com",
		ControllerName: "Jane Doe",
		Submitter:      "Anonymous",
		Position:       "ZAB_CTR",
	})
	require.NoError(t, err)

	err = HandleFeedbackApproved(sender, "https://zab.example.com/dash/feedback")(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", sender.to)
	assert.Contains(t, sender.subject, "New Feedback Received")
	assert.Contains(t, sender.html, "Jane Doe")
	assert.Contains(t, sender.html, "Anonymous")
	assert.Contains(t, sender.html, "ZAB_CTR")
	assert.Contains(t, sender.html, "https://zab.example.com/dash/feedback")
}

func TestHandleFeedbackRejected(t *testing.T) {
	sender := &fakeSender{}
	task, err := NewFeedbackRejectedTask(FeedbackRejectedPayload{
		To:            "john@example.com",
		SubmitterName: "John Pilot",
		Reason:        "Feedback must be about a specific session",
	})
	require.NoError(t, err)

	require.NoError(t, HandleFeedbackRejected(sender)(context.Background(), task))
	assert.Equal(t, "john@example.com", sender.to)
	assert.Contains(t, sender.html, "Feedback must be about a specific session")
}

func TestHandlerReturnsSendErrorForRetry(t *testing.T) {
	sender := &fakeSender{err: errors.New("421 try again later")}
	task, err := NewFeedbackRejectedTask(FeedbackRejectedPayload{To: "john@example.com"})
	require.NoError(t, err)

	err = HandleFeedbackRejected(sender)(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandlerSkipsRetryOnBadPayload(t *testing.T) {
	task := asynq.NewTask(TypeFeedbackApproved, []byte("{not json"))
	err := HandleFeedbackApproved(&fakeSender{}, "")(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestRenderRejectedEscapesReason(t *testing.T) {
	html, err := RenderRejectedEmailHTML(RejectedEmailData{SubmitterName: "x", Reason: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
