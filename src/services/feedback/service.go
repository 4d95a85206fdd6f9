// Package feedback owns the moderation lifecycle of controller feedback:
// intake, approve/reject, and the paginated moderator and subject views.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"reflect"
	"slices"
	"strings"
	"time"

	"Backend-ZAB-Portal/src/metrics"
	"Backend-ZAB-Portal/src/models"
	"Backend-ZAB-Portal/src/services/notify"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationTitle = "New Feedback Received"
	NotificationLink  = "/dash/feedback"
	AnonymousLabel    = "Anonymous"
)

type Service struct {
	store      Store
	directory  Directory
	dispatcher notify.Dispatcher
	validate   *validator.Validate
	now        func() time.Time
}

func NewService(store Store, directory Directory, dispatcher notify.Dispatcher) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so the client sees the field it actually sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.FeedbackRatings, fl.Field().String())
	})

	return &Service{
		store:      store,
		directory:  directory,
		dispatcher: dispatcher,
		validate:   v,
		now:        time.Now,
	}
}

// ApproveResult is returned for every committed approval. DeliveryErr is
// the soft failure of the notification side effect, if any.
type ApproveResult struct {
	Feedback     *models.Feedback
	Notification *models.Notification
	DeliveryErr  error
}

type RejectResult struct {
	Feedback    *models.Feedback
	DeliveryErr error
}

// Submit validates the intake and stores a pending record. No notification
// fires at this stage.
func (s *Service) Submit(ctx context.Context, in models.FeedbackInput) (*models.Feedback, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, toValidationError(err)
	}

	controllerID, _ := primitive.ObjectIDFromHex(in.Controller)
	ok, err := s.directory.Exists(ctx, controllerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &models.ValidationError{Field: "controller", Message: "controller does not exist"}
	}

	fb := &models.Feedback{
		ID:           primitive.NewObjectID(),
		Name:         in.Name,
		Email:        in.Email,
		SubmitterCID: in.CID,
		ControllerID: controllerID,
		Rating:       in.Rating,
		Position:     in.Position,
		Comments:     in.Comments,
		Anonymous:    in.Anonymous,
		State:        models.FeedbackPending,
		Approved:     false,
		CreatedAt:    s.now(),
	}
	if err := s.store.Insert(ctx, fb); err != nil {
		return nil, err
	}

	metrics.FeedbackTransitions.WithLabelValues(string(models.FeedbackPending)).Inc()
	log.Printf("[feedback] submitted id=%s controller=%s anonymous=%t", fb.ID.Hex(), controllerID.Hex(), fb.Anonymous)
	return fb, nil
}

// Approve moves a pending record to approved and notifies the subject
// controller once. Approving a record that is not pending, including one
// already approved, returns models.ErrNotFound.
func (s *Service) Approve(ctx context.Context, id string) (*ApproveResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	fb, err := s.store.Decide(ctx, oid, Decision{State: models.FeedbackApproved, At: s.now()})
	if err != nil {
		return nil, err
	}
	metrics.FeedbackTransitions.WithLabelValues(string(models.FeedbackApproved)).Inc()
	log.Printf("✅ [feedback] approved id=%s", fb.ID.Hex())

	label := submitterLabel(fb)
	n := &models.Notification{
		ID:        primitive.NewObjectID(),
		Recipient: fb.ControllerID,
		Read:      false,
		Title:     NotificationTitle,
		Content:   fmt.Sprintf("You have received new feedback from <b>%s</b>.", html.EscapeString(label)),
		Link:      NotificationLink,
		CreatedAt: s.now(),
	}

	recipient := notify.Recipient{ControllerID: fb.ControllerID}
	c, lookupErr := s.directory.FindByID(ctx, fb.ControllerID)
	if lookupErr != nil {
		log.Printf("⚠️ [feedback] subject lookup failed id=%s: %v", fb.ID.Hex(), lookupErr)
	} else {
		recipient.Email = c.Email
		recipient.Name = c.FullName()
	}

	derr := s.dispatcher.Deliver(ctx, notify.Message{
		Kind:         notify.KindFeedbackApproved,
		Recipient:    recipient,
		FeedbackID:   fb.ID,
		Position:     fb.Position,
		Submitter:    label,
		Notification: n,
	})
	if lookupErr != nil {
		// ไม่มีที่อยู่ email จึงส่งได้แค่ in-app
		derr = withLookupFailure(derr, lookupErr)
	}
	if derr != nil {
		log.Printf("⚠️ [feedback] approved id=%s but notification failed: %v", fb.ID.Hex(), derr)
	}

	return &ApproveResult{Feedback: fb, Notification: n, DeliveryErr: derr}, nil
}

// Reject soft-deletes a pending record and emails the reason to the
// submitter when an email sink is configured.
func (s *Service) Reject(ctx context.Context, id, reason string) (*RejectResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	reason = strings.TrimSpace(reason)
	fb, err := s.store.Decide(ctx, oid, Decision{State: models.FeedbackRejected, At: s.now(), Reason: reason})
	if err != nil {
		return nil, err
	}
	metrics.FeedbackTransitions.WithLabelValues(string(models.FeedbackRejected)).Inc()
	log.Printf("[feedback] rejected id=%s", fb.ID.Hex())

	derr := s.dispatcher.Deliver(ctx, notify.Message{
		Kind:       notify.KindFeedbackRejected,
		Recipient:  notify.Recipient{Email: fb.Email, Name: fb.Name},
		FeedbackID: fb.ID,
		Position:   fb.Position,
		Reason:     reason,
	})
	if derr != nil {
		log.Printf("⚠️ [feedback] rejected id=%s but rejection email failed: %v", fb.ID.Hex(), derr)
	}

	return &RejectResult{Feedback: fb, DeliveryErr: derr}, nil
}

func withLookupFailure(derr, lookupErr error) error {
	out := &models.DeliveryError{Sinks: []string{"recipient-lookup"}, Err: lookupErr}
	var prev *models.DeliveryError
	if errors.As(derr, &prev) {
		out.Sinks = append(out.Sinks, prev.Sinks...)
		out.Err = errors.Join(lookupErr, prev.Err)
	} else if derr != nil {
		out.Err = errors.Join(lookupErr, derr)
	}
	return out
}

func submitterLabel(fb *models.Feedback) string {
	if fb.Anonymous {
		return AnonymousLabel
	}
	return fb.Name
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &models.ValidationError{Field: "body", Message: err.Error()}
	}

	first := verrs[0]
	msg := "is required"
	switch first.Tag() {
	case "max":
		msg = "must be at most " + first.Param() + " characters"
	case "rating":
		msg = "must be one of: " + strings.Join(models.FeedbackRatings, " ")
	case "email":
		msg = "must be a valid email address"
	case "mongodb":
		msg = "must be a valid id"
	}
	return &models.ValidationError{Field: first.Field(), Message: msg}
}
