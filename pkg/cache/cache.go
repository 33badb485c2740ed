package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tiffin/pkg/logger"
)

// Backend минимальный контракт key-value хранилища с TTL.
// Реализуется redis-клиентом; nil backend означает выключенный кеш.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Cache best-effort фасад над Backend: кеш всегда избыточная копия
// store of record, поэтому любая его недоступность деградирует в
// промах/no-op и никогда не превращается в ошибку запроса.
type Cache struct {
	log        handlerLogger
	backend    Backend
	defaultTTL time.Duration
}

func New(log handlerLogger, backend Backend, defaultTTL time.Duration) *Cache {
	return &Cache{
		log:        log,
		backend:    backend,
		defaultTTL: defaultTTL,
	}
}

// Enabled сообщает, подключен ли backend. Нужен только для логов старта.
func (c *Cache) Enabled() bool {
	return c.backend != nil
}

// Key собирает неймспейс-ключ вида "addresses:list:{owner}".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// Get возвращает сырой JSON значения или miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c.backend == nil {
		return nil, false
	}

	raw, err := c.backend.Get(ctx, key)
	if err != nil {
		c.log.With(
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Warn("cache read error")
		missTotal.WithLabelValues(keyspace(key)).Inc()
		return nil, false
	}
	if raw == nil {
		missTotal.WithLabelValues(keyspace(key)).Inc()
		return nil, false
	}

	hitTotal.WithLabelValues(keyspace(key)).Inc()
	return raw, true
}

// Set сериализует значение и кладет его с ttl (0 = defaultTTL).
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c.backend == nil {
		return
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.With(
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Warn("cache marshal error")
		return
	}

	if err := c.backend.SetEx(ctx, key, raw, ttl); err != nil {
		c.log.With(
			logger.NewField("key", key),
			logger.NewField("error", err),
		).Warn("cache write error")
	}
}

// Invalidate удаляет произвольный набор ключей. Пропуск инвалидации это
// баг консистентности, но сбой самого кеша — нет: он только логируется.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c.backend == nil || len(keys) == 0 {
		return
	}

	if err := c.backend.Del(ctx, keys...); err != nil {
		c.log.With(
			logger.NewField("keys", keys),
			logger.NewField("error", err),
		).Warn("cache invalidation error")
		return
	}

	invalidateTotal.Add(float64(len(keys)))
}

// Through читающая обертка: промах вызывает load и кеширует результат.
// Аналог декоратора @cache поверх read-операции.
func Through[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var value T

	if raw, ok := c.Get(ctx, key); ok {
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, nil
		}
		// битая запись: считаем промахом и перечитываем из store of record
		c.Invalidate(ctx, key)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	c.Set(ctx, key, value, ttl)
	return value, nil
}

func keyspace(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
