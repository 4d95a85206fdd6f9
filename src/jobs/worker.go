package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"Backend-ZAB-Portal/src/metrics"
	"Backend-ZAB-Portal/src/services/email"

	"github.com/hibiken/asynq"
)

// Purger is implemented by *feedback.MongoStore.
type Purger interface {
	DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// HandlePurgeRejectedFeedback hard-deletes rejected feedback older than the
// retention window carried in the payload.
func HandlePurgeRejectedFeedback(store Purger, now func() time.Time) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PurgeRejectedPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if payload.RetentionDays <= 0 {
			log.Println("⚠️ [worker] retention disabled, skipping purge")
			return nil
		}

		cutoff := now().Add(-time.Duration(payload.RetentionDays) * 24 * time.Hour)
		n, err := store.DeleteRejectedBefore(ctx, cutoff)
		if err != nil {
			log.Println("❌ [worker] purge rejected feedback failed:", err)
			return err
		}

		metrics.RejectedPurged.Add(float64(n))
		log.Printf("✅ [worker] purged %d rejected feedback older than %s", n, cutoff.Format(time.RFC3339))
		return nil
	}
}

type WorkerOptions struct {
	Redis         asynq.RedisClientOpt
	Sender        email.MailSender // nil: email tasks are not handled by this worker
	FrontendURL   string
	Store         Purger
	RetentionDays int
}

// NewServeMux ผูก handler กับ task type ทั้งหมด
func NewServeMux(opts WorkerOptions) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	if opts.Sender != nil {
		email.RegisterFeedbackHandlers(mux, opts.Sender, opts.FrontendURL)
	}
	mux.HandleFunc(TypePurgeRejectedFeedback, HandlePurgeRejectedFeedback(opts.Store, time.Now))
	return mux
}

// RunWorker runs the asynq server and, when retention is enabled, the daily
// purge scheduler. It blocks until ctx is cancelled.
func RunWorker(ctx context.Context, opts WorkerOptions) error {
	srv := asynq.NewServer(opts.Redis, asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{"default": 1},
	})
	if err := srv.Start(NewServeMux(opts)); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	log.Println("✅ Worker started")

	var scheduler *asynq.Scheduler
	if opts.RetentionDays > 0 {
		task, err := NewPurgeRejectedFeedbackTask(opts.RetentionDays)
		if err != nil {
			srv.Shutdown()
			return err
		}
		scheduler = asynq.NewScheduler(opts.Redis, nil)
		if _, err := scheduler.Register("@daily", task); err != nil {
			srv.Shutdown()
			return fmt.Errorf("register purge schedule: %w", err)
		}
		if err := scheduler.Start(); err != nil {
			srv.Shutdown()
			return fmt.Errorf("start scheduler: %w", err)
		}
		log.Printf("✅ Rejected feedback purge scheduled daily (retention=%dd)", opts.RetentionDays)
	}

	<-ctx.Done()
	if scheduler != nil {
		scheduler.Shutdown()
	}
	srv.Shutdown()
	log.Println("Worker stopped")
	return nil
}
