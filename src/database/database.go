package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	db         *mongo.Database
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	FeedbackCollection     *mongo.Collection
	NotificationCollection *mongo.Collection
	UserCollection         *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB(mongoURI, dbName string) error {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			log.Println("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(ctx, readpref.Primary())
		if connectErr != nil {
			log.Println("❌ MongoDB ping failed:", connectErr)
			return
		}

		db = client.Database(dbName)
		FeedbackCollection = db.Collection("feedback")
		NotificationCollection = db.Collection("notifications")
		UserCollection = db.Collection("users")

		log.Printf("✅ MongoDB connected successfully (db=%s)", dbName)
		connectErr = ensureIndexes(ctx)
	})

	return connectErr
}

// ensureIndexes สร้าง index ที่ใช้กับ query ของ feedback
func ensureIndexes(ctx context.Context) error {
	_, err := FeedbackCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "state", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "controller", Value: 1}, {Key: "state", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		log.Println("❌ Failed to create feedback indexes:", err)
	}
	return err
}

// DisconnectMongoDB ปิดการเชื่อมต่อ
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
