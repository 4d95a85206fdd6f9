package utils

import (
	"context"
	"errors"
	"fmt"

	DB "Backend-ZAB-Portal/src/database"

	"github.com/redis/go-redis/v9"
)

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่ (logout จาก identity service)
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
