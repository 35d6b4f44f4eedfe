package storage

import (
	"context"

	"github.com/netvendor/creditintake/config"
	"github.com/redis/go-redis/v9"
)

// RedisClient holds the redis connection used as the shared rate-limit store.
// It stays nil when REDIS_URL is not configured; the limiter then falls back
// to its per-instance in-memory store.
var RedisClient *redis.Client

// InitializeRedis connects to redis when a REDIS_URL is configured
func InitializeRedis() error {
	conf := config.ServerConfig()
	if conf.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		return err
	}

	RedisClient = redis.NewClient(opts)
	return RedisClient.Ping(context.Background()).Err()
}
