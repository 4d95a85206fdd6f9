package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypePurgeRejectedFeedback = "feedback:purge-rejected"

type PurgeRejectedPayload struct {
	RetentionDays int `json:"retention_days"`
}

func NewPurgeRejectedFeedbackTask(retentionDays int) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeRejectedPayload{RetentionDays: retentionDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeRejectedFeedback, payload), nil
}
