package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"jobmarket/internal/core/ports"
)

// DefaultCacheTTL is how long a cached collection is served before the store
// is consulted again.
const DefaultCacheTTL = 5 * time.Minute

// readThrough serves a value of type T from the cache, falling back to fetch
// on a miss and storing the result for ttl.
//
// The cache is an accelerator only: a cache that cannot be read, or holds a
// value that does not decode, is treated as a miss, and a failed write is
// logged. None of these fail the request.
type readThrough[T any] struct {
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func newReadThrough[T any](cache ports.Cache, ttl time.Duration, logger *slog.Logger) readThrough[T] {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return readThrough[T]{cache: cache, ttl: ttl, logger: logger}
}

func (r readThrough[T]) load(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if value, ok := r.lookup(ctx, key); ok {
		return value, nil
	}

	return r.refresh(ctx, key, fetch)
}

// refresh always reads the store and overwrites the cached entry.
func (r readThrough[T]) refresh(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	r.store(ctx, key, value)
	return value, nil
}

func (r readThrough[T]) lookup(ctx context.Context, key string) (T, bool) {
	var value T

	raw, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.WarnContext(ctx, "cache read failed, reading from store", "key", key, "error", err)
		return value, false
	}
	if !hit {
		return value, false
	}

	if err = json.Unmarshal(raw, &value); err != nil {
		r.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
		return value, false
	}
	return value, true
}

func (r readThrough[T]) store(ctx context.Context, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to encode cache entry", "key", key, "error", err)
		return
	}

	if err = r.cache.Set(ctx, key, raw, r.ttl); err != nil {
		r.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
