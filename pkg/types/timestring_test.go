package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:30", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"09:60", true},
		{"09-30", true},
		{"", true},
		{"morning", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	minutes, err := TimeString("10:00").MinutesUntil(TimeString("11:30"))
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	// Обратный порядок дает отрицательное значение
	minutes, err = TimeString("11:30").MinutesUntil(TimeString("10:00"))
	require.NoError(t, err)
	assert.Equal(t, -90, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore(TimeString("10:00")))
	assert.False(t, TimeString("10:00").IsBefore(TimeString("10:00")))
	assert.True(t, TimeString("10:01").IsAfter(TimeString("10:00")))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// lib/pq возвращает TIME как time.Time
	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:05"), ts)

	// Текстовое представление с секундами обрезается до HH:MM
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("18:45")))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:15").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:15", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}
