package occupancy

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis минимальный in-memory фейк под интерфейс RedisClient
type fakeRedis struct {
	vals      map[string]int64
	expireErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{vals: make(map[string]int64)}
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.vals[key]++
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(f.vals[key])
	return cmd
}

func (f *fakeRedis) Decr(ctx context.Context, key string) *redis.IntCmd {
	f.vals[key]--
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(f.vals[key])
	return cmd
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	v, ok := f.vals[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(strconv.FormatInt(v, 10))
	return cmd
}

func (f *fakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if f.expireErr != nil {
		cmd.SetErr(f.expireErr)
		return cmd
	}
	cmd.SetVal(true)
	return cmd
}

func TestTracker_GetCount_EmptySlot(t *testing.T) {
	tracker := NewTracker(newFakeRedis())

	count, err := tracker.GetCount(context.Background(), "1-2026-09-10-almuerzo-0")

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTracker_Reserve_UpToCapacity(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(newFakeRedis())
	slotID := "1-2026-09-10-almuerzo-0"

	for i := 0; i < 3; i++ {
		ok, err := tracker.Reserve(ctx, slotID, 3)
		require.NoError(t, err)
		assert.True(t, ok, "reserva %d dentro de la capacidad", i+1)
	}

	// Четвертая попытка сверх вместимости отклоняется, счетчик не растет
	ok, err := tracker.Reserve(ctx, slotID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := tracker.GetCount(ctx, slotID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTracker_Reserve_RollsBackWhenExpireFails(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	fake.expireErr = errors.New("connection reset")
	tracker := NewTracker(fake)
	slotID := "1-2026-09-10-merienda-0"

	_, err := tracker.Reserve(ctx, slotID, 3)
	require.ErrorIs(t, err, ErrStorage)

	// Инкремент без TTL не должен остаться в Redis
	assert.Equal(t, int64(0), fake.vals["ocupacion:"+slotID])
}

func TestTracker_Release_FreesSpot(t *testing.T) {
	ctx := context.Background()
	tracker := NewTracker(newFakeRedis())
	slotID := "2-2026-09-11-cena-1"

	ok, err := tracker.Reserve(ctx, slotID, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tracker.Reserve(ctx, slotID, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, tracker.Release(ctx, slotID))

	// После отмены место снова доступно
	ok, err = tracker.Reserve(ctx, slotID, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTracker_Release_DoesNotGoNegative(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	tracker := NewTracker(fake)
	slotID := "3-2026-09-12-desayuno-2"

	require.NoError(t, tracker.Release(ctx, slotID))

	count, err := tracker.GetCount(ctx, slotID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
