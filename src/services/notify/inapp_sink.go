package notify

import (
	"context"

	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationStore interface {
	InsertNotification(ctx context.Context, n *models.Notification) error
}

// MongoNotificationStore เขียน notification ลง collection "notifications"
type MongoNotificationStore struct {
	col *mongo.Collection
}

func NewMongoNotificationStore(col *mongo.Collection) *MongoNotificationStore {
	return &MongoNotificationStore{col: col}
}

func (s *MongoNotificationStore) InsertNotification(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if _, err := s.col.InsertOne(ctx, n); err != nil {
		return &models.StoreError{Op: "insert notification", Err: err}
	}
	return nil
}

// InAppSink stores the approval notification for the subject controller.
// Rejections never create one.
type InAppSink struct {
	store NotificationStore
}

func NewInAppSink(store NotificationStore) *InAppSink {
	return &InAppSink{store: store}
}

func (s *InAppSink) Name() string { return "in-app" }

func (s *InAppSink) Deliver(ctx context.Context, msg Message) error {
	if msg.Kind != KindFeedbackApproved || msg.Notification == nil {
		return nil
	}
	return s.store.InsertNotification(ctx, msg.Notification)
}
