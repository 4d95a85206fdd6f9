package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
)

const facilityName = "Albuquerque ARTCC"

// HandleFeedbackApproved ส่งอีเมลแจ้ง controller ว่ามี feedback ใหม่
func HandleFeedbackApproved(sender MailSender, dashboardURL string) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p FeedbackApprovedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode %s: %v: %w", t.Type(), err, asynq.SkipRetry)
		}

		html, err := RenderApprovedEmailHTML(ApprovedEmailData{
			ControllerName: p.ControllerName,
			Submitter:      p.Submitter,
			Position:       p.Position,
			DashboardLink:  dashboardURL,
		})
		if err != nil {
			return fmt.Errorf("render approved email: %v: %w", err, asynq.SkipRetry)
		}

		subject := "New Feedback Received | " + facilityName
		if err := sender.Send(p.To, subject, html); err != nil {
			log.Printf("❌ [worker] approved email failed feedback=%s dispatch=%s: %v", p.FeedbackID, p.DispatchID, err)
			return err
		}
		log.Printf("✅ [worker] approved email sent feedback=%s dispatch=%s", p.FeedbackID, p.DispatchID)
		return nil
	}
}

// HandleFeedbackRejected ส่งเหตุผลการ reject ให้ผู้ส่ง feedback
func HandleFeedbackRejected(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p FeedbackRejectedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("decode %s: %v: %w", t.Type(), err, asynq.SkipRetry)
		}

		html, err := RenderRejectedEmailHTML(RejectedEmailData{
			SubmitterName: p.SubmitterName,
			Position:      p.Position,
			Reason:        p.Reason,
		})
		if err != nil {
			return fmt.Errorf("render rejected email: %v: %w", err, asynq.SkipRetry)
		}

		subject := "Feedback Rejected | " + facilityName
		if err := sender.Send(p.To, subject, html); err != nil {
			log.Printf("❌ [worker] rejected email failed feedback=%s dispatch=%s: %v", p.FeedbackID, p.DispatchID, err)
			return err
		}
		log.Printf("✅ [worker] rejected email sent feedback=%s dispatch=%s", p.FeedbackID, p.DispatchID)
		return nil
	}
}

// RegisterFeedbackHandlers ลงทะเบียน handler ของ email task ทั้งหมด
func RegisterFeedbackHandlers(mux *asynq.ServeMux, sender MailSender, frontendURL string) {
	mux.HandleFunc(TypeFeedbackApproved, HandleFeedbackApproved(sender, frontendURL+"/dash/feedback"))
	mux.HandleFunc(TypeFeedbackRejected, HandleFeedbackRejected(sender))
}
