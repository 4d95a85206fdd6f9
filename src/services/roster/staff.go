package roster

import "Backend-ZAB-Portal/src/models"

type StaffBucket struct {
	Title string              `json:"title"`
	Code  string              `json:"code"`
	Users []models.Controller `json:"users"`
}

type bucketDescriptor struct {
	Title string
	Code  string
}

// staffBuckets maps a role code to the roster section it is listed under.
// Instructors and mentors share the "instructors" section code.
var staffBuckets = map[string]bucketDescriptor{
	"atm":  {Title: "Air Traffic Manager", Code: "atm"},
	"datm": {Title: "Deputy Air Traffic Manager", Code: "datm"},
	"ta":   {Title: "Training Administrator", Code: "ta"},
	"ec":   {Title: "Events Coordinator", Code: "ec"},
	"wm":   {Title: "Web Team", Code: "wm"},
	"fe":   {Title: "Facility Engineer", Code: "fe"},
	"ins":  {Title: "Instructors", Code: "instructors"},
	"mtr":  {Title: "Mentors", Code: "instructors"},
}

// GroupStaff returns every bucket, empty ones included, keyed by role code.
// Unknown role codes are ignored.
func GroupStaff(users []models.Controller) map[string]*StaffBucket {
	out := make(map[string]*StaffBucket, len(staffBuckets))
	for role, d := range staffBuckets {
		out[role] = &StaffBucket{Title: d.Title, Code: d.Code, Users: []models.Controller{}}
	}
	for _, u := range users {
		for _, role := range u.Roles {
			if b, ok := out[role]; ok {
				b.Users = append(b.Users, u)
			}
		}
	}
	return out
}
