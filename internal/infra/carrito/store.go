package carrito

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ucc-comedor/ComedorService/internal/domain"
)

// Store хранит каррито кассира в Redis как JSON-блоб с TTL.
// Каррито эфемерно: живет от открытия до подтверждения оплаты либо
// истекает само, если кассир его бросил. Снапшот позиций при финализации
// уходит в Postgres вместе с резервацией
type Store struct {
	client RedisClient
	ttl    time.Duration
}

// NewStore создает хранилище каррито с заданным TTL
func NewStore(client RedisClient, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create создает пустое каррито для резервации и возвращает его
func (s *Store) Create(ctx context.Context, reservaID int64, now time.Time) (*domain.Carrito, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - generate id: %v", ErrStorage, err)
	}

	c := &domain.Carrito{
		ID:        id,
		ReservaID: reservaID,
		Items:     make([]domain.ItemPedido, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Get получает каррито по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.Carrito, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrCarritoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get %s: %v", ErrStorage, id, err)
	}

	var c domain.Carrito
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: Get %s - unmarshal: %v", ErrEncode, id, err)
	}

	return &c, nil
}

// Save сохраняет каррито, обновляя TTL
func (s *Store) Save(ctx context.Context, c *domain.Carrito) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: Save %s - marshal: %v", ErrEncode, c.ID, err)
	}

	if err := s.client.Set(ctx, s.key(c.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save %s: %v", ErrStorage, c.ID, err)
	}

	return nil
}

// Delete удаляет каррито (после подтверждения оплаты)
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete %s: %v", ErrStorage, id, err)
	}
	return nil
}

func (s *Store) key(id string) string {
	return "carrito:" + id
}

// generateID возвращает случайный hex идентификатор каррито
func generateID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
