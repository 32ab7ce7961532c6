package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pageza/fittrack/backend/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a new Redis client. It returns nil and no error when
// Redis is not configured; callers treat a nil client as "feature off".
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		log.Printf("[Redis] Not configured, rate limiting and shared chat history disabled")
		return nil, nil
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	// Use Redis URL if provided (for production deployments)
	if cfg.RedisURL != "" {
		parsedOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("[Redis] Successfully connected to %s", opts.Addr)
	return client, nil
}
