package seeder

import (
	"context"
	"errors"
	"testing"

	"Backend-ZAB-Portal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type recordingSubmitter struct {
	inputs []models.FeedbackInput
	failAt int
}

func (r *recordingSubmitter) Submit(_ context.Context, in models.FeedbackInput) (*models.Feedback, error) {
	if r.failAt > 0 && len(r.inputs)+1 == r.failAt {
		return nil, &models.ValidationError{Field: "controller", Message: "unknown controller"}
	}
	r.inputs = append(r.inputs, in)
	return &models.Feedback{ID: primitive.NewObjectID()}, nil
}

func sampleControllers(n int) []models.Controller {
	out := make([]models.Controller, n)
	for i := range out {
		out[i] = models.Controller{ID: primitive.NewObjectID(), FirstName: "C", LastName: "Ontroller"}
	}
	return out
}

func TestSeedSampleFeedbackOnePerController(t *testing.T) {
	svc := &recordingSubmitter{}
	ctrls := sampleControllers(4)

	n, err := SeedSampleFeedback(context.Background(), svc, ctrls)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.Len(t, svc.inputs, 4)
	for i, in := range svc.inputs {
		assert.Equal(t, ctrls[i].ID.Hex(), in.Controller)
		assert.Contains(t, models.FeedbackRatings, in.Rating)
		require.NotNil(t, in.CID)
	}
	assert.True(t, svc.inputs[1].Anonymous)
}

func TestSeedSampleFeedbackStopsOnError(t *testing.T) {
	svc := &recordingSubmitter{failAt: 2}

	n, err := SeedSampleFeedback(context.Background(), svc, sampleControllers(3))
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, n)
}
