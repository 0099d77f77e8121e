// Package redis manages a process-wide Redis client. The client backs
// rate limiting only, so startup tolerates Redis being absent.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client  *redis.Client
	once    sync.Once
	initErr error
)

// Config holds the Redis connection settings. URL accepts redis:// or
// rediss:// (TLS, as Upstash serves) forms.
type Config struct {
	URL      string
	Password string
}

// Client returns the shared client, or nil when Redis is not
// configured or the connection failed at startup.
func Client() *redis.Client {
	return client
}

// Initialize dials Redis once. Later calls return the first result.
func Initialize(cfg Config) error {
	once.Do(func() {
		if cfg.URL == "" {
			initErr = errors.New("redis: no URL configured")
			return
		}

		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			initErr = fmt.Errorf("redis: parse URL: %w", err)
			return
		}
		if cfg.Password != "" {
			opts.Password = cfg.Password
		}
		opts.DialTimeout = 5 * time.Second
		opts.ReadTimeout = 3 * time.Second
		opts.WriteTimeout = 3 * time.Second
		opts.PoolSize = 10
		opts.MinIdleConns = 2

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("redis: ping: %w", err)
			_ = c.Close()
			return
		}
		client = c
	})
	return initErr
}

// IsAvailable reports whether the shared client currently responds.
func IsAvailable() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

// HealthCheck pings Redis with the caller's context.
func HealthCheck(ctx context.Context) error {
	if client == nil {
		return errors.New("redis: client not initialized")
	}
	return client.Ping(ctx).Err()
}

// Close releases the shared client.
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
