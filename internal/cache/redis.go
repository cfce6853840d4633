package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisClient wraps go-redis behind a disabled-safe facade: without a
// configured REDIS_URL every operation is a no-op and the service keeps
// working on in-memory caches alone.
type RedisClient struct {
	client  *redis.Client
	enabled bool
	logger  zerolog.Logger
}

func NewRedisClient(redisURL string, logger zerolog.Logger) *RedisClient {
	if redisURL == "" {
		logger.Info().Msg("redis not configured, using in-memory caches only")
		return &RedisClient{logger: logger}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to parse REDIS_URL, redis disabled")
		return &RedisClient{logger: logger}
	}

	opt.PoolSize = 5
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, redis disabled")
		return &RedisClient{logger: logger}
	}

	logger.Info().Msg("redis connected")
	return &RedisClient{client: client, enabled: true, logger: logger}
}

// Get returns the cached value or "" on miss. Disabled clients always miss.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	if !r.enabled {
		return "", nil
	}
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Set stores a value with the given expiry.
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if !r.enabled {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}
