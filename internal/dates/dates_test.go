package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"weekday tuesday", "2024-03-05", "03/05/2024 (Tue)"},
		{"weekday sunday", "2025-06-01", "06/01/2025 (Sun)"},
		{"new years day", "2024-01-01", "01/01/2024 (Mon)"},
		{"malformed", "not-a-date", "Invalid Date"},
		{"empty", "", "Invalid Date"},
		{"wrong order", "05/03/2024", "Invalid Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplayDate(tt.in))
		})
	}
}

func TestParseISODate(t *testing.T) {
	got, err := ParseISODate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseISODate("2024-3-5")
	assert.Error(t, err)

	_, err = ParseISODate("tomorrow")
	assert.Error(t, err)
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 3, 5, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Midnight(in))

	// A non-UTC time is converted before truncation.
	est := time.FixedZone("EST", -5*3600)
	in = time.Date(2024, 3, 5, 22, 0, 0, 0, est) // 03:00 UTC next day
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Midnight(in))
}

func TestToday(t *testing.T) {
	got := Today()
	parsed, err := ParseISODate(got)
	require.NoError(t, err)
	assert.Equal(t, got, parsed.Format(ISOLayout))
}
