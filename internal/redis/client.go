package redis

import (
	"github.com/redis/go-redis/v9"

	"socialink/internal/config"
)

// NewClient creates a Redis client from the application configuration.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
