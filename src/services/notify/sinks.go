package notify

import (
	"log"

	"Backend-ZAB-Portal/src/services/email"
)

// NewSinks returns the in-app sink, plus the email sink when there is a
// queue to enqueue on and SMTP is configured for the worker to send with.
func NewSinks(store NotificationStore, queue Enqueuer, smtp email.SMTPConfig) []Sink {
	sinks := []Sink{NewInAppSink(store)}
	if missing := smtp.Missing(); len(missing) > 0 {
		log.Printf("⚠️ [notify] email disabled, missing SMTP env: %v", missing)
		return sinks
	}
	if queue == nil {
		log.Println("⚠️ [notify] email disabled, no task queue")
		return sinks
	}
	return append(sinks, NewEmailSink(queue))
}
