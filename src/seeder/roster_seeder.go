package seeder

import (
	"context"
	"log"

	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sampleRoster controller ตัวอย่างสำหรับ local development
var sampleRoster = []models.Controller{
	{CID: 1000001, FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com", Rating: 5, OI: "JD", Roles: []string{"atm"}},
	{CID: 1000002, FirstName: "Sam", LastName: "Lee", Email: "sam.lee@example.com", Rating: 5, OI: "SL", Roles: []string{"datm"}},
	{CID: 1000003, FirstName: "Alex", LastName: "Kim", Email: "alex.kim@example.com", Rating: 8, OI: "AK", Roles: []string{"ins", "ta"}},
	{CID: 1000004, FirstName: "Robin", LastName: "Park", Email: "robin.park@example.com", Rating: 3, OI: "RP"},
	{CID: 1000005, FirstName: "Chris", LastName: "Nguyen", Email: "chris.nguyen@example.com", Rating: 2, OI: "CN"},
}

// SeedSampleRoster upserts the sample controllers keyed by cid and returns how many were inserted.
func SeedSampleRoster(ctx context.Context, users *mongo.Collection) (int, error) {
	inserted := 0
	for _, c := range sampleRoster {
		res, err := users.UpdateOne(ctx,
			bson.M{"cid": c.CID},
			bson.M{"$setOnInsert": bson.M{
				"cid":    c.CID,
				"fname":  c.FirstName,
				"lname":  c.LastName,
				"email":  c.Email,
				"rating": c.Rating,
				"oi":     c.OI,
				"roles":  c.Roles,
				"vis":    c.Visitor,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Printf("❌ Error seeding controller %d: %v", c.CID, err)
			return inserted, &models.StoreError{Op: "seed roster", Err: err}
		}
		if res.UpsertedCount > 0 {
			inserted++
			log.Printf("✅ Created controller: %s %s (CID: %d)", c.FirstName, c.LastName, c.CID)
		}
	}
	return inserted, nil
}
