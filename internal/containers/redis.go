package containers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"

	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/vlatan/block-site/internal/config"
)

// The Redis image the cache is tested against
const redisImage = "redis:8.0.3"

type redisContainer struct {
	*tcredis.RedisContainer
}

// Terminate stops and removes the container, errors are only logged
func (rc *redisContainer) Terminate(ctx context.Context) {
	if err := rc.RedisContainer.Terminate(ctx); err != nil {
		log.Printf("failed to terminate the Redis container: %v", err)
	}
}

// SetupTestRedis starts a throwaway Redis and points
// the Redis host and port of the config at it
func SetupTestRedis(ctx context.Context, cfg *config.Config) (Container, error) {

	container, err := tcredis.Run(ctx, redisImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start the Redis container: %w", err)
	}

	host, port, err := redisAddr(ctx, container)
	if err != nil {
		if tErr := container.Terminate(ctx); tErr != nil {
			err = errors.Join(err, tErr)
		}
		return nil, err
	}

	cfg.RedisHost = host
	cfg.RedisPort = port
	cfg.CacheEnabled = true

	return &redisContainer{container}, nil
}

// redisAddr reads the mapped address from the connection string,
// which looks like redis://host:port
func redisAddr(ctx context.Context, container *tcredis.RedisContainer) (string, int, error) {

	conn, err := container.ConnectionString(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to get the Redis connection string: %w", err)
	}

	u, err := url.Parse(conn)
	if err != nil {
		return "", 0, fmt.Errorf("invalid Redis connection string %q: %w", conn, err)
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return "", 0, fmt.Errorf("invalid Redis port in %q: %w", conn, err)
	}

	return u.Hostname(), port, nil
}
