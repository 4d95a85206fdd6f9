package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedbackState สถานะของ feedback ในคิว moderation
type FeedbackState string

const (
	FeedbackPending  FeedbackState = "pending"
	FeedbackApproved FeedbackState = "approved"
	FeedbackRejected FeedbackState = "rejected"
)

// MaxFeedbackComments is counted in characters, not bytes.
const MaxFeedbackComments = 5000

// FeedbackRatings ค่าที่อนุญาตของ rating
var FeedbackRatings = []string{"poor", "fair", "good", "excellent"}

// Feedback เอกสาร feedback ที่เก็บใน collection "feedback"
type Feedback struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name,omitempty"`
	Email        string             `bson:"email" json:"email,omitempty"`
	SubmitterCID *int               `bson:"submitter,omitempty" json:"submitter,omitempty"`
	ControllerID primitive.ObjectID `bson:"controller" json:"controller"`
	Rating       string             `bson:"rating" json:"rating"`
	Position     string             `bson:"position" json:"position"`
	Comments     string             `bson:"comments" json:"comments"`
	Anonymous    bool               `bson:"anonymous" json:"anonymous"`
	State        FeedbackState      `bson:"state" json:"state"`

	// Approved mirrors State == FeedbackApproved for older readers of the collection.
	Approved     bool       `bson:"approved" json:"approved"`
	Deleted      bool       `bson:"deleted" json:"deleted"`
	DeletedAt    *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	DecidedAt    *time.Time `bson:"decidedAt,omitempty" json:"decidedAt,omitempty"`
	RejectReason string     `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`

	// Subject is filled in for moderator listings only.
	Subject *ControllerSummary `bson:"-" json:"subject,omitempty"`
}

// FeedbackInput body ของ POST /feedback
type FeedbackInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	CID        *int   `json:"cid" validate:"required"`
	Controller string `json:"controller" validate:"required,mongodb"`
	Rating     string `json:"rating" validate:"required,rating"`
	Position   string `json:"position" validate:"required"`
	Comments   string `json:"comments" validate:"max=5000"`
	Anonymous  bool   `json:"anon"`
}

// ProjectedFeedback is a feedback record redacted for one audience.
type ProjectedFeedback struct {
	ID           primitive.ObjectID `json:"id"`
	ControllerID primitive.ObjectID `json:"controller"`
	Name         string             `json:"name,omitempty"`
	Email        string             `json:"email,omitempty"`
	SubmitterCID *int               `json:"submitter,omitempty"`
	Rating       string             `json:"rating"`
	Position     string             `json:"position"`
	Comments     string             `json:"comments"`
	Anonymous    bool               `json:"anonymous"`
	State        FeedbackState      `json:"state,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// RejectInput body ของ PUT /feedback/reject/:id
type RejectInput struct {
	Reason string `json:"reason"`
}
