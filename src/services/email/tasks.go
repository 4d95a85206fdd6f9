package email

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeFeedbackApproved = "email:feedback-approved"
	TypeFeedbackRejected = "email:feedback-rejected"
)

// FeedbackApprovedPayload goes to the subject controller.
type FeedbackApprovedPayload struct {
	DispatchID     string `json:"dispatchId"`
	FeedbackID     string `json:"feedbackId"`
	To             string `json:"to"`
	ControllerName string `json:"controllerName"`
	Submitter      string `json:"submitter"`
	Position       string `json:"position"`
}

// FeedbackRejectedPayload goes to the submitter.
type FeedbackRejectedPayload struct {
	DispatchID    string `json:"dispatchId"`
	FeedbackID    string `json:"feedbackId"`
	To            string `json:"to"`
	SubmitterName string `json:"submitterName"`
	Position      string `json:"position"`
	Reason        string `json:"reason"`
}

func NewFeedbackApprovedTask(p FeedbackApprovedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFeedbackApproved, b), nil
}

func NewFeedbackRejectedTask(p FeedbackRejectedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeFeedbackRejected, b), nil
}
