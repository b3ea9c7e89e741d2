package occupancy

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyTTL время жизни счетчика слота. Слоты генерируются максимум на
// две недели вперед, счетчик нужен только до конца дня обслуживания
const keyTTL = 15 * 24 * time.Hour

// Tracker отслеживает занятость слотов через атомарные счетчики в Redis.
// Ключ - идентификатор слота (sede-fecha-turno-index), значение - число
// резерваций, удерживающих место. Счетчик растет при создании резервации
// и уменьшается только при отмене: финализация и неявка место не освобождают
type Tracker struct {
	client RedisClient
}

// NewTracker создает трекер занятости поверх Redis
func NewTracker(client RedisClient) *Tracker {
	return &Tracker{client: client}
}

// GetCount возвращает текущую занятость слота.
// Отсутствующий ключ означает пустой слот
func (t *Tracker) GetCount(ctx context.Context, slotID string) (int, error) {
	count, err := t.client.Get(ctx, t.key(slotID)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetCount %s: %v", ErrStorage, slotID, err)
	}
	if count < 0 {
		return 0, nil
	}
	return count, nil
}

// Reserve пытается занять одно место в слоте.
// INCR атомарен между инстансами сервиса; если счетчик превысил вместимость,
// инкремент откатывается и возвращается false
func (t *Tracker) Reserve(ctx context.Context, slotID string, capacidad int) (bool, error) {
	key := t.key(slotID)

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Reserve %s: %v", ErrStorage, slotID, err)
	}

	if count == 1 {
		// Первая резервация в слоте - ограничиваем жизнь ключа.
		// Без TTL инкремент не оставляем, иначе ключ живет вечно
		if err := t.client.Expire(ctx, key, keyTTL).Err(); err != nil {
			if rollbackErr := t.client.Decr(ctx, key).Err(); rollbackErr != nil {
				return false, fmt.Errorf("%w: Reserve %s - rollback after expire: %v", ErrStorage, slotID, rollbackErr)
			}
			return false, fmt.Errorf("%w: Reserve %s - set expire: %v", ErrStorage, slotID, err)
		}
	}

	if count > int64(capacidad) {
		if err := t.client.Decr(ctx, key).Err(); err != nil {
			return false, fmt.Errorf("%w: Reserve %s - rollback: %v", ErrStorage, slotID, err)
		}
		return false, nil
	}

	return true, nil
}

// Release освобождает одно место в слоте (отмена резервации).
// Счетчик не опускается ниже нуля: лишний декремент откатывается
func (t *Tracker) Release(ctx context.Context, slotID string) error {
	key := t.key(slotID)

	count, err := t.client.Decr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: Release %s: %v", ErrStorage, slotID, err)
	}

	if count < 0 {
		if err := t.client.Incr(ctx, key).Err(); err != nil {
			return fmt.Errorf("%w: Release %s - floor: %v", ErrStorage, slotID, err)
		}
	}

	return nil
}

func (t *Tracker) key(slotID string) string {
	return "ocupacion:" + slotID
}
