package occupancy

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient подмножество команд go-redis, используемое трекером.
// *redis.Client реализует интерфейс; в тестах подменяется фейком
type RedisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}
