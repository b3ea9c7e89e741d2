package carrito

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucc-comedor/ComedorService/internal/domain"
)

var (
	milanesa = domain.Consumible{ID: 1, Nombre: "Milanesa con puré", Tipo: domain.TipoPlato, Precio: 1800, Disponible: true}
	limonada = domain.Consumible{ID: 2, Nombre: "Limonada", Tipo: domain.TipoBebida, Precio: 600, Disponible: true}
)

type fakeRedis struct {
	vals map[string][]byte
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{vals: make(map[string][]byte)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.vals[key] = append([]byte(nil), value.([]byte)...)
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	v, ok := f.vals[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(string(v))
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, k := range keys {
		if _, ok := f.vals[k]; ok {
			delete(f.vals, k)
			deleted++
		}
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(deleted)
	return cmd
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRedis(), 30*time.Minute)
	now := time.Date(2026, 9, 10, 12, 30, 0, 0, time.UTC)

	created, err := store.Create(ctx, 42, now)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, int64(42), created.ReservaID)
	assert.Empty(t, created.Items)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(42), got.ReservaID)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := NewStore(newFakeRedis(), 30*time.Minute)

	_, err := store.Get(context.Background(), "no-such-carrito")

	assert.ErrorIs(t, err, ErrCarritoNotFound)
}

func TestStore_SaveRoundTripsItems(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRedis(), 30*time.Minute)
	now := time.Date(2026, 9, 10, 12, 30, 0, 0, time.UTC)

	c, err := store.Create(ctx, 7, now)
	require.NoError(t, err)

	c.AgregarItem(&milanesa)
	c.AgregarItem(&milanesa)
	c.AgregarItem(&limonada)
	require.NoError(t, store.Save(ctx, c))

	got, err := store.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Items[0].Cantidad)
	assert.InDelta(t, 2*1800.0+600.0, got.Subtotal(), 0.001)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeRedis(), 30*time.Minute)

	c, err := store.Create(ctx, 7, time.Now())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, c.ID))

	_, err = store.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCarritoNotFound)
}
