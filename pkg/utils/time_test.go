package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isEnd   bool
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: "2026-03-15T10:30:00Z",
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date as start",
			input: "2026-03-15",
			want:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare end date covers whole day",
			input: "2026-03-15",
			isEnd: true,
			want:  time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "not-a-time",
			wantErr: true,
		},
		{
			name:    "us format rejected",
			input:   "03/15/2026",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindowTime(tt.input, tt.isEnd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestWindowDefaultsToTrailingThirtyDays(t *testing.T) {
	start, end, err := Window("", "")
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), end, time.Minute)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), start, time.Minute)
}

func TestWindowPartialBounds(t *testing.T) {
	start, end, err := Window("2026-01-01", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.WithinDuration(t, time.Now(), end, time.Minute)
}

func TestWindowRejectsInvertedBounds(t *testing.T) {
	_, _, err := Window("2026-02-01", "2026-01-01")
	assert.Error(t, err)
}

func TestWindowRejectsBadBound(t *testing.T) {
	_, _, err := Window("yesterday", "")
	assert.Error(t, err)
}
