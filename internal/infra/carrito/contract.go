package carrito

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient подмножество команд go-redis, используемое хранилищем.
// *redis.Client реализует интерфейс; в тестах подменяется фейком
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
