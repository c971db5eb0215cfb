package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_UsesTimeLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, DateKey("2024-03-09"), Normalize(instant))
	assert.Equal(t, DateKey("2024-03-10"), Normalize(instant.In(tokyo)))
}

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DateKey
		wantErr bool
	}{
		{"plain day", "2024-01-01", "2024-01-01", false},
		{"leap day", "2024-02-29", "2024-02-29", false},
		{"utc timestamp", "2024-01-01T10:15:00Z", "2024-01-01", false},
		{"timestamp keeps its offset", "2024-01-01T23:30:00-05:00", "2024-01-01", false},
		{"empty", "", "", true},
		{"unpadded", "2024-1-1", "", true},
		{"impossible day", "2023-02-29", "", true},
		{"garbage", "yesterday", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateKey(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateKey_Idempotent(t *testing.T) {
	inputs := []string{"2024-01-01", "1999-12-31T23:59:59Z", "2030-06-15T00:00:00+14:00"}
	for _, in := range inputs {
		once, err := ParseDateKey(in)
		require.NoError(t, err)
		twice, err := ParseDateKey(string(once))
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", in)
	}

	instant := time.Date(2025, 11, 2, 1, 30, 0, 0, time.UTC)
	key := Normalize(instant)
	again, err := ParseDateKey(key.String())
	require.NoError(t, err)
	assert.Equal(t, key, again)
}

func TestOffset(t *testing.T) {
	tests := []struct {
		key   DateKey
		delta int
		want  DateKey
	}{
		{"2024-01-01", 0, "2024-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-03-10", -13, "2024-02-26"},
		{"2024-12-31", 365, "2025-12-31"},
	}

	for _, tt := range tests {
		got, err := Offset(tt.key, tt.delta)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Offset(%s, %d)", tt.key, tt.delta)
	}
}

func TestOffset_MalformedKey(t *testing.T) {
	_, err := Offset("01/02/2024", 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDateKey_Valid(t *testing.T) {
	assert.True(t, DateKey("2024-06-30").Valid())
	assert.False(t, DateKey("2024-06-31").Valid())
	assert.False(t, DateKey("").Valid())
}
