package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/zakerai/zaker-web/internal/pkg/env"
)

var client *redis.Client

// SetupCache connects to the redis compatible cache server. Without
// CACHE_HOST the app runs on in-memory stores and GetClient returns nil.
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		log.Info("cache: CACHE_HOST not set, running without redis")
		return
	}
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	if err := Ping(context.Background()); err != nil {
		log.Warnf("cache: could not connect to %s:%s: %v", host, port, err)
	} else {
		log.Infof("cache: connected to %s:%s", host, port)
	}
}

// UseClient installs an existing client, e.g. one pointing at miniredis
func UseClient(c *redis.Client) {
	client = c
}

// GetClient returns the Redis client instance, or nil without a cache
func GetClient() *redis.Client {
	return client
}

func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("cache not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
