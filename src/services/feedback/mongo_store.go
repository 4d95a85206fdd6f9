package feedback

import (
	"context"
	"errors"
	"time"

	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on the "feedback" collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (s *MongoStore) Insert(ctx context.Context, fb *models.Feedback) error {
	res, err := s.col.InsertOne(ctx, fb)
	if err != nil {
		return &models.StoreError{Op: "insert feedback", Err: err}
	}
	// sync inserted id (เผื่อไดรเวอร์คืนค่า id ใหม่)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		fb.ID = oid
	}
	return nil
}

func (s *MongoStore) Decide(ctx context.Context, id primitive.ObjectID, d Decision) (*models.Feedback, error) {
	set := bson.M{
		"state":     d.State,
		"approved":  d.State == models.FeedbackApproved,
		"decidedAt": d.At,
	}
	if d.State == models.FeedbackRejected {
		set["deleted"] = true
		set["deletedAt"] = d.At
		if d.Reason != "" {
			set["rejectReason"] = d.Reason
		}
	}

	filter := bson.M{"_id": id, "state": models.FeedbackPending}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var fb models.Feedback
	err := s.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&fb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.StoreError{Op: "decide feedback", Err: err}
	}
	return &fb, nil
}

func (s *MongoStore) Find(ctx context.Context, f Filter, skip, limit int64) ([]models.Feedback, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if skip > 0 {
		findOpts.SetSkip(skip)
	}
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := s.col.Find(ctx, toBSON(f), findOpts)
	if err != nil {
		return nil, &models.StoreError{Op: "find feedback", Err: err}
	}
	defer cursor.Close(ctx)

	feedback := []models.Feedback{}
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, &models.StoreError{Op: "decode feedback", Err: err}
	}
	return feedback, nil
}

func (s *MongoStore) Count(ctx context.Context, f Filter) (int64, error) {
	n, err := s.col.CountDocuments(ctx, toBSON(f))
	if err != nil {
		return 0, &models.StoreError{Op: "count feedback", Err: err}
	}
	return n, nil
}

func (s *MongoStore) DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.col.DeleteMany(ctx, bson.M{
		"state":     models.FeedbackRejected,
		"deletedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, &models.StoreError{Op: "purge rejected feedback", Err: err}
	}
	return res.DeletedCount, nil
}

func toBSON(f Filter) bson.M {
	q := bson.M{}
	if len(f.States) == 1 {
		q["state"] = f.States[0]
	} else if len(f.States) > 1 {
		q["state"] = bson.M{"$in": f.States}
	}
	if !f.ControllerID.IsZero() {
		q["controller"] = f.ControllerID
	}
	return q
}
