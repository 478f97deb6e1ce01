package rdb

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vlatan/block-site/internal/metrics"
)

// GetItems reads through the cache.
// On a miss, or when caching is off, callable fetches the data.
// Cache failures are logged and never fail the read.
// T has to implement the encoding binary (un)marshalers.
func GetItems[T any](
	cached bool,
	ctx context.Context,
	rdb *Service,
	cacheKey string,
	ttl time.Duration,
	callable func() (T, error),
) (T, error) {

	if !cached || rdb == nil {
		return callable()
	}

	key := Key(cacheKey)

	var cachedData T
	err := rdb.Client.Get(ctx, key).Scan(&cachedData)
	switch {
	case err == nil:
		metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return cachedData, nil
	case errors.Is(err, redis.Nil):
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		log.Printf("Failed to read '%s' from the cache: %v", key, err)
	}

	data, err := callable()
	if err != nil {
		return data, err
	}

	if err := rdb.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Failed to write '%s' to the cache: %v", key, err)
	}

	return data, nil
}
