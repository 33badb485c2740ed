package redisclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"tiffin/internal/pkg/config"
	"tiffin/pkg/cache"
	"tiffin/pkg/logger"
	retrierconfig "tiffin/pkg/retrier"
	"tiffin/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// Client оборачивает go-redis под контракт cache.Backend.
type Client struct {
	rdb *redis.Client
}

var _ cache.Backend = (*Client)(nil)

// New подключается к Redis. Недоступность Redis не валит сервис:
// возвращается nil backend и кеш деградирует в выключенный.
func New(ctx context.Context, log logger.Logger, cfg *config.Redis) *Client {
	if !cfg.Enabled {
		log.Info("Redis disabled, cache is off")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort(cfg.Host, cfg.Port),
	})

	redisLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
	)

	if err := pingRedis(ctx, redisLog, rdb); err != nil {
		if closeErr := rdb.Close(); closeErr != nil {
			redisLog.With(
				logger.NewField("error", closeErr),
			).Warn("failed to close Redis client")
		}
		redisLog.With(
			logger.NewField("error", err),
		).Warn("Redis unavailable, starting with cache off")
		return nil
	}

	return &Client{rdb: rdb}
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// промах это не ошибка
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

func (c *Client) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func pingRedis(ctx context.Context, log logger.Logger, rdb *redis.Client) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Redis connection")

		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Redis connection established")
	return nil
}
