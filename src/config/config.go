package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"Backend-ZAB-Portal/src/services/email"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	AppURI         string // port
	RedisURI       string
	FrontendURL    string
	AllowedOrigins string

	// RejectedRetentionDays หลังจากนี้ feedback ที่ถูก reject จะถูกลบจริง; 0 = เก็บไว้ตลอด
	RejectedRetentionDays int

	SMTP email.SMTPConfig
}

// Load อ่านค่าจาก .env (ถ้ามี) และ environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getenv("MONGO_DB", "ZABPortalDB"),
		AppURI:         getenv("APP_URI", "8888"),
		RedisURI:       os.Getenv("REDIS_URI"),
		FrontendURL:    strings.TrimRight(getenv("FRONTEND_URL", "http://localhost:8080"), "/"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "*"),
	}
	cfg.SMTP = email.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		User:     os.Getenv("SMTP_USER"),
		Pass:     os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: getenv("SMTP_FROM_NAME", "Albuquerque ARTCC"),
	}
	cfg.SMTP.Port, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}

	if v := os.Getenv("FEEDBACK_REJECTED_RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 0 {
			return nil, errors.New("FEEDBACK_REJECTED_RETENTION_DAYS must be a non-negative integer")
		}
		cfg.RejectedRetentionDays = days
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
