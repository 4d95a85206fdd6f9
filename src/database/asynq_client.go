package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq สร้าง client สำหรับ enqueue email task เมื่อ Redis พร้อมใช้งาน
func InitAsynq() *asynq.Client {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Email delivery queue disabled.")
		return nil
	}

	AsynqClient = asynq.NewClient(RedisConnOpt())
	log.Println("✅ Asynq client ready")
	return AsynqClient
}

// RedisConnOpt ใช้ร่วมกันระหว่าง client, server และ scheduler
func RedisConnOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: RedisURI}
}

func CloseAsynq() {
	if AsynqClient == nil {
		return
	}
	if err := AsynqClient.Close(); err != nil {
		log.Println("⚠️ Failed to close asynq client:", err)
	}
}
