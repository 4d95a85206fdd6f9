package seeder

import (
	"context"
	"log"

	"Backend-ZAB-Portal/src/models"
)

// Submitter is the part of the feedback service the seeder drives.
type Submitter interface {
	Submit(ctx context.Context, in models.FeedbackInput) (*models.Feedback, error)
}

// SeedSampleFeedback submits one pending feedback per controller so the
// moderation queue has something to work with. Submissions go through the
// service, so they are validated like real ones.
func SeedSampleFeedback(ctx context.Context, svc Submitter, controllers []models.Controller) (int, error) {
	samples := []struct {
		rating, position, comments string
		anon                       bool
	}{
		{"excellent", "ZAB_APP", "Smooth flow into the bravo, great spacing on the final.", false},
		{"good", "PHX_TWR", "Clear and concise, one readback missed.", true},
		{"fair", "ABQ_CTR", "Handoff to the adjacent sector came late.", false},
	}

	created := 0
	for i, c := range controllers {
		s := samples[i%len(samples)]
		cid := 1500000 + i
		fb, err := svc.Submit(ctx, models.FeedbackInput{
			Name:       "Sample Pilot",
			Email:      "pilot@example.com",
			CID:        &cid,
			Controller: c.ID.Hex(),
			Rating:     s.rating,
			Position:   s.position,
			Comments:   s.comments,
			Anonymous:  s.anon,
		})
		if err != nil {
			log.Printf("Error creating feedback for %s: %v", c.FullName(), err)
			return created, err
		}
		created++
		log.Printf("✅ Created feedback: %s (ID: %s)", c.FullName(), fb.ID.Hex())
	}
	return created, nil
}
