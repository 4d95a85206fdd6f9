package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisURI string

// InitRedis connects and pings Redis. On failure RedisClient stays nil and
// callers fall back to their no-redis behaviour.
func InitRedis(uri string) error {
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set. Redis features disabled.")
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     uri, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := c.Ping(ctx).Result(); err != nil {
		_ = c.Close()
		return fmt.Errorf("failed to connect redis: %w", err)
	}

	RedisClient = c
	RedisURI = uri
	log.Println("✅ Redis connected successfully")
	return nil
}
