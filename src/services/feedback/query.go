package feedback

import (
	"context"

	"Backend-ZAB-Portal/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ModerationPage struct {
	Items []models.Feedback
	Total int64
}

type SubjectPage struct {
	Items []models.ProjectedFeedback
	Total int64
}

// ListForModeration returns decided feedback newest first. Rejected records
// are retained for audit and only listed when includeRejected is set.
//
// Total is counted separately from the page fetch and may drift from Items
// under concurrent writes.
func (s *Service) ListForModeration(ctx context.Context, p models.PaginationParams, includeRejected bool) (*ModerationPage, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := Filter{States: []models.FeedbackState{models.FeedbackApproved}}
	if includeRejected {
		f.States = append(f.States, models.FeedbackRejected)
	}

	total, err := s.store.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Find(ctx, f, p.GetSkip(), int64(p.Limit))
	if err != nil {
		return nil, err
	}
	if err := s.attachSubjects(ctx, items); err != nil {
		return nil, err
	}
	return &ModerationPage{Items: items, Total: total}, nil
}

// ListForSubject returns the approved feedback about one controller,
// redacted for the subject.
func (s *Service) ListForSubject(ctx context.Context, controllerID string, p models.PaginationParams) (*SubjectPage, error) {
	oid, err := primitive.ObjectIDFromHex(controllerID)
	if err != nil {
		return nil, &models.ValidationError{Field: "id", Message: "must be a valid id"}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := Filter{States: []models.FeedbackState{models.FeedbackApproved}, ControllerID: oid}
	total, err := s.store.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	records, err := s.store.Find(ctx, f, p.GetSkip(), int64(p.Limit))
	if err != nil {
		return nil, err
	}

	items := make([]models.ProjectedFeedback, 0, len(records))
	for _, r := range records {
		pf, err := Project(r, ViewerSubject)
		if err != nil {
			return nil, err
		}
		items = append(items, pf)
	}
	return &SubjectPage{Items: items, Total: total}, nil
}

// ListPending คิว feedback ที่ยังรอ moderator ตัดสิน
func (s *Service) ListPending(ctx context.Context) ([]models.Feedback, error) {
	items, err := s.store.Find(ctx, Filter{States: []models.FeedbackState{models.FeedbackPending}}, 0, 0)
	if err != nil {
		return nil, err
	}
	if err := s.attachSubjects(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachSubjects fills Subject with one directory lookup per page. A
// controller missing from the roster leaves Subject nil.
func (s *Service) attachSubjects(ctx context.Context, items []models.Feedback) error {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[primitive.ObjectID]bool, len(items))
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, it := range items {
		if !seen[it.ControllerID] {
			seen[it.ControllerID] = true
			ids = append(ids, it.ControllerID)
		}
	}

	found, err := s.directory.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range items {
		if c, ok := found[items[i].ControllerID]; ok {
			items[i].Subject = c.Summary()
		}
	}
	return nil
}
