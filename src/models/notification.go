package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification แจ้งเตือนในแอปของ controller
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Recipient primitive.ObjectID `bson:"recipient" json:"recipient"`
	Read      bool               `bson:"read" json:"read"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Link      string             `bson:"link" json:"link"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
