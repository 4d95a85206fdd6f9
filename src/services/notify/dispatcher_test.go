package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"Backend-ZAB-Portal/src/models"
	"Backend-ZAB-Portal/src/services/email"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSink struct {
	name  string
	err   error
	calls int
}

func (s *stubSink) Name() string { return s.name }

func (s *stubSink) Deliver(context.Context, Message) error {
	s.calls++
	return s.err
}

type memNotificationStore struct {
	saved []models.Notification
}

func (m *memNotificationStore) InsertNotification(_ context.Context, n *models.Notification) error {
	m.saved = append(m.saved, *n)
	return nil
}

type fakeQueue struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (q *fakeQueue) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	q.opts = append(q.opts, opts)
	return &asynq.TaskInfo{ID: "x"}, nil
}

func taskIDOf(opts []asynq.Option) string {
	for _, o := range opts {
		if o.Type() == asynq.TaskIDOpt {
			id, _ := o.Value().(string)
			return id
		}
	}
	return ""
}

func approvalMessage() Message {
	id := primitive.NewObjectID()
	return Message{
		Kind:       KindFeedbackApproved,
		Recipient:  Recipient{ControllerID: primitive.NewObjectID(), Email: "jane@example.com", Name: "Jane Doe"},
		FeedbackID: id,
		Position:   "ZAB_CTR",
		Submitter:  "Anonymous",
		Notification: &models.Notification{
			Title:   "New Feedback Received",
			Content: "You have received new feedback from <b>Anonymous</b>.",
			Link:    "/dash/feedback",
		},
	}
}

func TestDispatcherCallsEverySinkOnce(t *testing.T) {
	a := &stubSink{name: "in-app"}
	b := &stubSink{name: "email"}
	d := NewDispatcher(a, b)

	require.NoError(t, d.Deliver(context.Background(), approvalMessage()))
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, []string{"in-app", "email"}, d.Sinks())
}

func TestDispatcherReportsFailedSinks(t *testing.T) {
	boom := errors.New("boom")
	a := &stubSink{name: "in-app"}
	b := &stubSink{name: "email", err: boom}
	d := NewDispatcher(a, b)

	err := d.Deliver(context.Background(), approvalMessage())
	var derr *models.DeliveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, []string{"email"}, derr.Sinks)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.calls)
}

func TestInAppSinkOnlyStoresApprovals(t *testing.T) {
	store := &memNotificationStore{}
	sink := NewInAppSink(store)
	ctx := context.Background()

	require.NoError(t, sink.Deliver(ctx, approvalMessage()))
	require.NoError(t, sink.Deliver(ctx, Message{Kind: KindFeedbackRejected, Recipient: Recipient{Email: "x@example.com"}}))

	require.Len(t, store.saved, 1)
	assert.Equal(t, "New Feedback Received", store.saved[0].Title)
}

func TestEmailSinkEnqueuesApproval(t *testing.T) {
	q := &fakeQueue{}
	sink := NewEmailSink(q)
	msg := approvalMessage()

	require.NoError(t, sink.Deliver(context.Background(), msg))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, email.TypeFeedbackApproved, q.tasks[0].Type())
	assert.Equal(t, "feedback.approved:"+msg.FeedbackID.Hex(), taskIDOf(q.opts[0]))

	var p email.FeedbackApprovedPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload(), &p))
	assert.Equal(t, "jane@example.com", p.To)
	assert.Equal(t, "Anonymous", p.Submitter)
	assert.NotEmpty(t, p.DispatchID)
}

func TestEmailSinkEnqueuesRejection(t *testing.T) {
	q := &fakeQueue{}
	sink := NewEmailSink(q)
	msg := Message{
		Kind:       KindFeedbackRejected,
		Recipient:  Recipient{Email: "john@example.com", Name: "John Pilot"},
		FeedbackID: primitive.NewObjectID(),
		Reason:     "Duplicate submission",
	}

	require.NoError(t, sink.Deliver(context.Background(), msg))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, email.TypeFeedbackRejected, q.tasks[0].Type())

	var p email.FeedbackRejectedPayload
	require.NoError(t, json.Unmarshal(q.tasks[0].Payload(), &p))
	assert.Equal(t, "Duplicate submission", p.Reason)
	assert.Equal(t, "John Pilot", p.SubmitterName)
}

func TestEmailSinkSkipsMissingAddress(t *testing.T) {
	q := &fakeQueue{}
	msg := approvalMessage()
	msg.Recipient.Email = ""

	require.NoError(t, NewEmailSink(q).Deliver(context.Background(), msg))
	assert.Empty(t, q.tasks)
}

func TestEmailSinkDuplicateTaskIsNotAnError(t *testing.T) {
	q := &fakeQueue{err: asynq.ErrTaskIDConflict}
	assert.NoError(t, NewEmailSink(q).Deliver(context.Background(), approvalMessage()))
}

func TestEmailSinkQueueFailure(t *testing.T) {
	q := &fakeQueue{err: errors.New("redis: connection refused")}
	assert.Error(t, NewEmailSink(q).Deliver(context.Background(), approvalMessage()))
}

func completeSMTP() email.SMTPConfig {
	return email.SMTPConfig{Host: "smtp.example.com", Port: 587, User: "u", Pass: "p", From: "noreply@example.com"}
}

func sinkNames(sinks []Sink) []string {
	return NewDispatcher(sinks...).Sinks()
}

func TestNewSinksEmailNeedsSMTPAndQueue(t *testing.T) {
	store := &memNotificationStore{}

	assert.Equal(t, []string{"in-app", "email"}, sinkNames(NewSinks(store, &fakeQueue{}, completeSMTP())))

	noSMTP := completeSMTP()
	noSMTP.Host = ""
	assert.Equal(t, []string{"in-app"}, sinkNames(NewSinks(store, &fakeQueue{}, noSMTP)))
	assert.Equal(t, []string{"in-app"}, sinkNames(NewSinks(store, nil, completeSMTP())))
}
