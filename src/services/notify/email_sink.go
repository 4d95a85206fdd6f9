package notify

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Backend-ZAB-Portal/src/services/email"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// EmailSink hands emails to the asynq queue; the worker renders and sends them.
type EmailSink struct {
	queue    Enqueuer
	maxRetry int
}

func NewEmailSink(queue Enqueuer) *EmailSink {
	return &EmailSink{queue: queue, maxRetry: 5}
}

func (s *EmailSink) Name() string { return "email" }

func (s *EmailSink) Deliver(ctx context.Context, msg Message) error {
	if msg.Recipient.Email == "" {
		log.Printf("⚠️ [notify] no email address for %s feedback=%s, skipping email", msg.Kind, msg.FeedbackID.Hex())
		return nil
	}

	dispatchID := uuid.NewString()
	var (
		task *asynq.Task
		err  error
	)
	switch msg.Kind {
	case KindFeedbackApproved:
		task, err = email.NewFeedbackApprovedTask(email.FeedbackApprovedPayload{
			DispatchID:     dispatchID,
			FeedbackID:     msg.FeedbackID.Hex(),
			To:             msg.Recipient.Email,
			ControllerName: msg.Recipient.Name,
			Submitter:      msg.Submitter,
			Position:       msg.Position,
		})
	case KindFeedbackRejected:
		task, err = email.NewFeedbackRejectedTask(email.FeedbackRejectedPayload{
			DispatchID:    dispatchID,
			FeedbackID:    msg.FeedbackID.Hex(),
			To:            msg.Recipient.Email,
			SubmitterName: msg.Recipient.Name,
			Position:      msg.Position,
			Reason:        msg.Reason,
		})
	default:
		return fmt.Errorf("email sink: unknown message kind %q", msg.Kind)
	}
	if err != nil {
		return err
	}

	// one task per transition; a duplicate id means it is already queued
	taskID := string(msg.Kind) + ":" + msg.FeedbackID.Hex()
	_, err = s.queue.EnqueueContext(ctx, task, asynq.TaskID(taskID), asynq.MaxRetry(s.maxRetry))
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		log.Printf("⚠️ [notify] email task %s already queued", taskID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskID, err)
	}

	log.Printf("✅ [notify] email queued task=%s dispatch=%s", taskID, dispatchID)
	return nil
}
