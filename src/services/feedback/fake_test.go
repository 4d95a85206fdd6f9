package feedback

import (
	"context"
	"sort"
	"sync"
	"time"

	"Backend-ZAB-Portal/src/models"
	"Backend-ZAB-Portal/src/services/notify"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memStore struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]models.Feedback
}

func newMemStore() *memStore {
	return &memStore{records: map[primitive.ObjectID]models.Feedback{}}
}

func (m *memStore) Insert(_ context.Context, fb *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if fb.ID.IsZero() {
		fb.ID = primitive.NewObjectID()
	}
	m.records[fb.ID] = *fb
	return nil
}

func (m *memStore) Decide(_ context.Context, id primitive.ObjectID, d Decision) (*models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fb, ok := m.records[id]
	if !ok || fb.State != models.FeedbackPending {
		return nil, models.ErrNotFound
	}
	at := d.At
	fb.State = d.State
	fb.Approved = d.State == models.FeedbackApproved
	fb.DecidedAt = &at
	if d.State == models.FeedbackRejected {
		fb.Deleted = true
		fb.DeletedAt = &at
		fb.RejectReason = d.Reason
	}
	m.records[id] = fb
	return &fb, nil
}

func (m *memStore) match(f Filter) []models.Feedback {
	var out []models.Feedback
	for _, fb := range m.records {
		if !f.ControllerID.IsZero() && fb.ControllerID != f.ControllerID {
			continue
		}
		if len(f.States) > 0 {
			found := false
			for _, s := range f.States {
				if fb.State == s {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, fb)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memStore) Find(_ context.Context, f Filter, skip, limit int64) ([]models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := m.match(f)
	if skip >= int64(len(all)) {
		return []models.Feedback{}, nil
	}
	all = all[skip:]
	if limit > 0 && limit < int64(len(all)) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) Count(_ context.Context, f Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.match(f))), nil
}

func (m *memStore) DeleteRejectedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, fb := range m.records {
		if fb.State == models.FeedbackRejected && fb.DeletedAt != nil && fb.DeletedAt.Before(cutoff) {
			delete(m.records, id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) get(id primitive.ObjectID) models.Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id]
}

type fakeDirectory struct {
	controllers map[primitive.ObjectID]models.Controller
	findErr     error
	batchCalls  int
}

func (d *fakeDirectory) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := d.controllers[id]
	return ok, nil
}

func (d *fakeDirectory) FindByID(_ context.Context, id primitive.ObjectID) (*models.Controller, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	c, ok := d.controllers[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (d *fakeDirectory) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Controller, error) {
	d.batchCalls++
	if d.findErr != nil {
		return nil, d.findErr
	}
	out := map[primitive.ObjectID]models.Controller{}
	for _, id := range ids {
		if c, ok := d.controllers[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type memNotifications struct {
	mu    sync.Mutex
	saved []models.Notification
}

func (n *memNotifications) InsertNotification(_ context.Context, rec *models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.saved = append(n.saved, *rec)
	return nil
}

func (n *memNotifications) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.saved)
}

// recordingSink stands in for the email channel.
type recordingSink struct {
	mu   sync.Mutex
	msgs []notify.Message
	err  error
}

func (s *recordingSink) Name() string { return "email" }

func (s *recordingSink) Deliver(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return s.err
}

type fixture struct {
	svc           *Service
	store         *memStore
	directory     *fakeDirectory
	notifications *memNotifications
	email         *recordingSink
	subject       models.Controller
}

func newFixture() *fixture {
	subject := models.Controller{
		ID:        primitive.NewObjectID(),
		CID:       1456789,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	}
	store := newMemStore()
	notifications := &memNotifications{}
	email := &recordingSink{}
	dir := &fakeDirectory{controllers: map[primitive.ObjectID]models.Controller{subject.ID: subject}}

	svc := NewService(store, dir, notify.NewDispatcher(notify.NewInAppSink(notifications), email))
	return &fixture{svc: svc, store: store, directory: dir, notifications: notifications, email: email, subject: subject}
}

func (f *fixture) validInput() models.FeedbackInput {
	cid := 1234567
	return models.FeedbackInput{
		Name:       "John Pilot",
		Email:      "john.pilot@example.com",
		CID:        &cid,
		Controller: f.subject.ID.Hex(),
		Rating:     "good",
		Position:   "ZAB_CTR",
		Comments:   "Great session",
	}
}

// seed inserts a record directly with the given state and age.
func (f *fixture) seed(state models.FeedbackState, createdAt time.Time, anonymous bool) models.Feedback {
	cid := 1234567
	fb := models.Feedback{
		ID:           primitive.NewObjectID(),
		Name:         "John Pilot",
		Email:        "john.pilot@example.com",
		SubmitterCID: &cid,
		ControllerID: f.subject.ID,
		Rating:       "excellent",
		Position:     "ABQ_APP",
		Comments:     "Smooth handoff",
		Anonymous:    anonymous,
		State:        state,
		Approved:     state == models.FeedbackApproved,
		CreatedAt:    createdAt,
	}
	_ = f.store.Insert(context.Background(), &fb)
	return fb
}
