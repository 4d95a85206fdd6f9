package roster

import (
	"context"
	"errors"

	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDirectory อ่านข้อมูล controller จาก collection "users"
type MongoDirectory struct {
	col *mongo.Collection
}

func NewMongoDirectory(col *mongo.Collection) *MongoDirectory {
	return &MongoDirectory{col: col}
}

var activeFilter = bson.M{"deletedAt": nil}

func (d *MongoDirectory) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := d.col.CountDocuments(ctx, bson.M{"_id": id, "deletedAt": nil}, options.Count().SetLimit(1))
	if err != nil {
		return false, &models.StoreError{Op: "lookup controller", Err: err}
	}
	return n > 0, nil
}

func (d *MongoDirectory) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Controller, error) {
	var c models.Controller
	err := d.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.StoreError{Op: "find controller", Err: err}
	}
	return &c, nil
}

// FindByIDs โหลด fname/lname/cid ของหลาย controller ในครั้งเดียว (รวมคนที่ออกจาก roster แล้ว)
func (d *MongoDirectory) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Controller, error) {
	out := make(map[primitive.ObjectID]models.Controller, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	opts := options.Find().SetProjection(bson.M{"fname": 1, "lname": 1, "cid": 1})
	cursor, err := d.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, &models.StoreError{Op: "find controllers", Err: err}
	}
	defer cursor.Close(ctx)

	var found []models.Controller
	if err := cursor.All(ctx, &found); err != nil {
		return nil, &models.StoreError{Op: "decode controllers", Err: err}
	}
	for _, c := range found {
		out[c.ID] = c
	}
	return out, nil
}

// ListActive รายชื่อ controller สำหรับหน้า submit feedback (ไม่มี email)
func (d *MongoDirectory) ListActive(ctx context.Context) ([]models.Controller, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "fname", Value: 1}}).
		SetProjection(bson.M{"fname": 1, "lname": 1, "cid": 1, "_id": 1})

	cursor, err := d.col.Find(ctx, activeFilter, opts)
	if err != nil {
		return nil, &models.StoreError{Op: "list controllers", Err: err}
	}
	defer cursor.Close(ctx)

	controllers := []models.Controller{}
	if err := cursor.All(ctx, &controllers); err != nil {
		return nil, &models.StoreError{Op: "decode controllers", Err: err}
	}
	return controllers, nil
}

// ListStaff groups active controllers holding a staff role into buckets.
func (d *MongoDirectory) ListStaff(ctx context.Context) (map[string]*StaffBucket, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lname", Value: 1}, {Key: "fname", Value: 1}}).
		SetProjection(bson.M{"email": 0})

	filter := bson.M{"deletedAt": nil, "roles.0": bson.M{"$exists": true}}
	cursor, err := d.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, &models.StoreError{Op: "list staff", Err: err}
	}
	defer cursor.Close(ctx)

	var users []models.Controller
	if err := cursor.All(ctx, &users); err != nil {
		return nil, &models.StoreError{Op: "decode staff", Err: err}
	}
	return GroupStaff(users), nil
}
