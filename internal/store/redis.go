package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis from either a full URL (Upstash style)
// or a plain host:port address.
func NewRedisClient(url, password string, db int) (*redis.Client, error) {
	var rdb *redis.Client

	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		opt, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
		}
		rdb = redis.NewClient(opt)
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     url,
			Password: password,
			DB:       db,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return rdb, nil
}

// RedisCounter implements Counter on Redis INCR + EXPIRE so the window
// quota is shared across instances.
type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (r *RedisCounter) Take(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	count, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		// Callers fail open on store errors
		return Decision{Allowed: true, Remaining: limit, Reset: time.Now().Add(window)}, err
	}

	// Set expiration on first request in the window
	if count == 1 {
		r.rdb.Expire(ctx, key, window)
	}

	reset := time.Now().Add(window)
	if count > int64(limit) {
		return Decision{Allowed: false, Remaining: 0, Reset: reset}, nil
	}

	return Decision{Allowed: true, Remaining: limit - int(count), Reset: reset}, nil
}

// RedisCache implements Cache on plain SET with TTL / GET.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	r.rdb.Set(ctx, key, value, ttl)
}
