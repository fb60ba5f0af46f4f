package database

import (
	"context"

	"lottery-backend/config"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis returns a client for the configured redis, or nil when no
// redis host is set. The connection is checked with a ping.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
