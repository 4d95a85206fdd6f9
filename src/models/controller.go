package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Controller สมาชิกใน roster (collection "users")
type Controller struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CID       int                `bson:"cid" json:"cid"`
	FirstName string             `bson:"fname" json:"fname"`
	LastName  string             `bson:"lname" json:"lname"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	OI        string             `bson:"oi,omitempty" json:"oi,omitempty"`
	Roles     []string           `bson:"roles,omitempty" json:"roles,omitempty"`
	Visitor   bool               `bson:"vis" json:"vis"`
	DeletedAt *time.Time         `bson:"deletedAt,omitempty" json:"-"`
}

// ControllerSummary ข้อมูล controller ที่แนบไปกับ feedback ในมุมมองของ moderator
type ControllerSummary struct {
	ID        primitive.ObjectID `json:"id"`
	CID       int                `json:"cid"`
	FirstName string             `json:"fname"`
	LastName  string             `json:"lname"`
}

func (c *Controller) Summary() *ControllerSummary {
	return &ControllerSummary{ID: c.ID, CID: c.CID, FirstName: c.FirstName, LastName: c.LastName}
}

func (c *Controller) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ManagementRoles role codes ที่ถือว่าเป็น facility management (moderator)
var ManagementRoles = []string{"atm", "datm"}

// IsManagement reports whether any of roles is a management role.
func IsManagement(roles []string) bool {
	for _, r := range roles {
		for _, m := range ManagementRoles {
			if r == m {
				return true
			}
		}
	}
	return false
}
