package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventlottery/eventlottery-backend/config"
)

// InitRedis connects to Redis. A blank REDIS_ADDR returns (nil, nil) and the
// caller falls back to in-memory stores.
func InitRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		log.Println("ℹ️  REDIS_ADDR not set, using in-memory form sessions and rate limits")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("✅ Redis connected at %s", cfg.RedisAddr)
	return client, nil
}
