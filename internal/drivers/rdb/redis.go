// Package rdb is the optional Redis layer, a read-through cache and a lock
package rdb

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vlatan/block-site/internal/config"
)

// Every key the site writes lives under this prefix
const keyPrefix = "block-site:"

type Service struct {
	Client *redis.Client
}

// New creates the Redis client, it does not connect yet
func New(cfg *config.Config) (*Service, error) {

	if cfg == nil {
		return nil, errors.New("unable to create Redis service with nil config")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		ClientName:   "block-site",
		DialTimeout:  3 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	return &Service{Client: client}, nil
}

// Key namespaces a key of the site
func Key(name string) string {
	return keyPrefix + name
}

// Health pings Redis and counts the keys of the site
func (rs *Service) Health(ctx context.Context) map[string]any {

	start := time.Now()
	if err := rs.Client.Ping(ctx).Err(); err != nil {
		return map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}
	latency := time.Since(start)

	stats := map[string]any{
		"status":      "healthy",
		"response_ms": latency.Milliseconds(),
	}

	if keys, err := rs.Client.DBSize(ctx).Result(); err == nil {
		stats["total_keys"] = keys
	}

	pool := rs.Client.PoolStats()
	stats["open_connections"] = pool.TotalConns
	stats["idle_connections"] = pool.IdleConns

	return stats
}

// Close closes the underlying client, safe on a nil service
func (rs *Service) Close() error {
	if rs == nil || rs.Client == nil {
		return nil
	}
	return rs.Client.Close()
}
