package feedback

import (
	"errors"

	"Backend-ZAB-Portal/src/models"
)

// Viewer is the audience a record is projected for.
type Viewer int

const (
	ViewerPublic Viewer = iota
	ViewerSubject
	ViewerModerator
)

var ErrInvalidViewer = errors.New("feedback has no public projection")

// Project redacts fb for v. Moderators see everything. The subject never
// sees the submitter's email or cid, and sees the name only when the
// submission is not anonymous.
func Project(fb models.Feedback, v Viewer) (models.ProjectedFeedback, error) {
	out := models.ProjectedFeedback{
		ID:           fb.ID,
		ControllerID: fb.ControllerID,
		Rating:       fb.Rating,
		Position:     fb.Position,
		Comments:     fb.Comments,
		Anonymous:    fb.Anonymous,
		CreatedAt:    fb.CreatedAt,
	}

	switch v {
	case ViewerModerator:
		out.Name = fb.Name
		out.Email = fb.Email
		out.SubmitterCID = fb.SubmitterCID
		out.State = fb.State
	case ViewerSubject:
		if !fb.Anonymous {
			out.Name = fb.Name
		}
	default:
		return models.ProjectedFeedback{}, ErrInvalidViewer
	}
	return out, nil
}
