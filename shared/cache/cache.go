package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"frontdesk/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
	scanBatch             = 100
)

// RedisCache stores JSON values with TTLs given in seconds. A missing key
// surfaces as an error matching Nil.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Claim(ctx context.Context, key string, value any, duration int) (claimed bool, err error)
	Take(ctx context.Context, key string, value any) (err error)
	Incr(ctx context.Context, key string, window int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func (cache *redisCache) start(ctx context.Context, operation, key string) (context.Context, otel.Scope) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+operation)
	scope.SetAttribute(otelCacheKeyAttribute, key)

	return ctx, scope
}

func ttl(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// Clear deletes every key matching pattern, a glob such as "room:gets:*".
func (cache *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := cache.start(ctx, "Clear", pattern)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	iter := cache.client.Scan(ctx, 0, pattern, scanBatch).Iterator()

	for iter.Next(ctx) {
		if err = cache.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Error().Err(err).Str("key", iter.Val()).Msg("failed to delete cache key")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}
	}

	if err = iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.start(ctx, "Delete", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get fills value from key. A *string receives the raw value, anything else is JSON decoded.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.start(ctx, "Get", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	return decode(raw, value)
}

// Claim writes key only when it does not exist yet.
func (cache *redisCache) Claim(ctx context.Context, key string, value any, duration int) (claimed bool, err error) {
	ctx, scope := cache.start(ctx, "Claim", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	encoded, err := encode(value)
	if err != nil {
		return false, err
	}

	claimed, err = cache.client.SetNX(ctx, key, encoded, ttl(duration)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim cache key: %w", err)
	}

	return claimed, nil
}

// Take reads and deletes key atomically, so only one caller can consume a value.
func (cache *redisCache) Take(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.start(ctx, "Take", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, err := cache.client.GetDel(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to take cache value: %w", err)
	}

	return decode(raw, value)
}

func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.start(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	encoded, err := encode(value)
	if err != nil {
		return err
	}

	if err = cache.client.Set(ctx, key, encoded, ttl(duration)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cache saved")

	return nil
}

// Incr counts hits on key inside a fixed window. The window starts with the
// first hit and is not extended by later ones.
func (cache *redisCache) Incr(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := cache.start(ctx, "Incr", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var incr *redis.IntCmd

	_, err = cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, ttl(window))

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment cache counter: %w", err)
	}

	return incr.Val(), nil
}

func encode(value any) ([]byte, error) {
	if v, ok := value.(string); ok {
		return []byte(v), nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return encoded, nil
}

func decode(raw string, value any) error {
	if v, ok := value.(*string); ok {
		*v = raw

		return nil
	}

	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}
