package feedback

import (
	"context"
	"time"

	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter selects feedback records. Zero values match everything.
type Filter struct {
	States       []models.FeedbackState
	ControllerID primitive.ObjectID
}

// Decision is the single write applied by a moderation transition.
type Decision struct {
	State  models.FeedbackState
	At     time.Time
	Reason string
}

// Store is the document store behind the lifecycle and query services.
//
// Decide must be atomic at document granularity: it only matches a record
// that is still pending, so of two concurrent decisions on the same id one
// gets the updated record and the other gets models.ErrNotFound.
type Store interface {
	Insert(ctx context.Context, fb *models.Feedback) error
	Decide(ctx context.Context, id primitive.ObjectID, d Decision) (*models.Feedback, error)
	Find(ctx context.Context, f Filter, skip, limit int64) ([]models.Feedback, error)
	Count(ctx context.Context, f Filter) (int64, error)
	DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Directory is the roster lookup used for reference checks and recipient addresses.
type Directory interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Controller, error)
	// FindByIDs returns the controllers it found; unknown ids are absent from the map.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Controller, error)
}
