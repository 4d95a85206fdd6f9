// Package notify fans a moderation event out to every configured channel.
// The in-app notification and the outbound email are two sinks behind the
// same Dispatcher, so an approval reaches both through one call.
package notify

import (
	"context"
	"errors"
	"log"

	"Backend-ZAB-Portal/src/metrics"
	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Kind string

const (
	KindFeedbackApproved Kind = "feedback.approved"
	KindFeedbackRejected Kind = "feedback.rejected"
)

type Recipient struct {
	ControllerID primitive.ObjectID
	Email        string
	Name         string
}

// Message is one delivery request. Notification is set for approvals only.
type Message struct {
	Kind         Kind
	Recipient    Recipient
	FeedbackID   primitive.ObjectID
	Position     string
	Submitter    string // display label: submitter name or "Anonymous"
	Reason       string
	Notification *models.Notification
}

type Sink interface {
	Name() string
	Deliver(ctx context.Context, msg Message) error
}

type Dispatcher interface {
	Deliver(ctx context.Context, msg Message) error
}

// MultiDispatcher calls every sink exactly once per message. It does not
// retry; the email sink's queue owns retries.
type MultiDispatcher struct {
	sinks []Sink
}

func NewDispatcher(sinks ...Sink) *MultiDispatcher {
	return &MultiDispatcher{sinks: sinks}
}

func (d *MultiDispatcher) Deliver(ctx context.Context, msg Message) error {
	var (
		failed []string
		errs   []error
	)
	for _, s := range d.sinks {
		if err := s.Deliver(ctx, msg); err != nil {
			log.Printf("❌ [notify] sink=%s kind=%s feedback=%s: %v", s.Name(), msg.Kind, msg.FeedbackID.Hex(), err)
			metrics.DeliveryFailures.WithLabelValues(s.Name()).Inc()
			failed = append(failed, s.Name())
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &models.DeliveryError{Sinks: failed, Err: errors.Join(errs...)}
}

// Sinks returns the configured sink names, used for startup logging.
func (d *MultiDispatcher) Sinks() []string {
	names := make([]string, 0, len(d.sinks))
	for _, s := range d.sinks {
		names = append(names, s.Name())
	}
	return names
}
