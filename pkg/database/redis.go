package database

import (
	"context"
	"fmt"
	"time"

	"ddplanner_backend/internal/config"
	"ddplanner_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InitRedis connects to Redis, used as a short-lived cache for
// dashboard statistics. The cache is optional: callers fall back to
// recomputing when the client is nil.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	logger.Log.Info("redis connected", zap.String("host", cfg.Redis.Host))

	return client, nil
}
