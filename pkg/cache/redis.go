// Package cache holds the shared Redis client. The admin service uses it
// for cross-instance rate-limiter state; catalog reads always go straight
// to the database.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/kashvi-admin/config"
)

var RDB *redis.Client
var Ctx = context.Background()

// Connect initialises the Redis client and verifies the connection with a
// ping. Returns an error so the caller can react (log a warning and fall
// back, or abort).
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil // mark as unavailable so helpers no-op safely
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Available reports whether the Redis client is connected.
func Available() bool { return RDB != nil }

// IncrWindow atomically increments key and sets its expiry on first hit.
// Returns the post-increment count. Used by the fixed-window rate limiter.
func IncrWindow(key string, window time.Duration) (int64, error) {
	if RDB == nil {
		return 0, fmt.Errorf("cache: redis unavailable")
	}

	pipe := RDB.TxPipeline()
	incr := pipe.Incr(Ctx, key)
	pipe.Expire(Ctx, key, window)
	if _, err := pipe.Exec(Ctx); err != nil {
		return 0, fmt.Errorf("cache: incr %s: %w", key, err)
	}
	return incr.Val(), nil
}

// Del removes one or more keys.
func Del(keys ...string) error {
	if RDB == nil {
		return nil
	}
	return RDB.Del(Ctx, keys...).Err()
}
