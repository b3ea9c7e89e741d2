package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("nueve y media")
	assert.Error(t, err)
}

func TestTimeString_Comparaciones(t *testing.T) {
	a := TimeString("12:00")
	b := TimeString("13:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("14:00")

	res, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:00"), res)

	res, err = ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:45"), res)

	// Cruce de medianoche no está permitido
	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)

	// Dentro del mismo día suma válida para cualquier hora de inicio
	for h := 0; h < 23; h++ {
		inicio := NewTimeString(time.Date(0, 1, 1, h, 0, 0, 0, time.UTC))
		res, err := inicio.AddMinutes(60)
		require.NoError(t, err, "inicio %s", inicio)
		assert.Equal(t, h+1, res.Hour())
	}
}

func TestTimeString_At(t *testing.T) {
	fecha := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	instante := TimeString("12:30").At(fecha)

	assert.Equal(t, time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC), instante)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("12:00:00"))
	assert.Equal(t, TimeString("12:00"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 20, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("20:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
