package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

	for _, in := range []string{
		"2026-03-14T09:30",
		"2026-03-14T09:30:00",
		"2026-03-14 09:30:00",
		"2026-03-14T09:30:00Z",
	} {
		got, err := ParseDateTime(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), "input %q parsed to %v", in, got)
	}

	_, err := ParseDateTime("14.03.2026 09:30")
	assert.Error(t, err)
}

func TestFormatRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "2026-03-14T09:05:00", FormatDateTime(ts))

	back, err := ParseDateTime(FormatDateTime(ts))
	require.NoError(t, err)
	assert.True(t, back.Equal(ts))
}

func TestDisplayFormats(t *testing.T) {
	ts := time.Date(2026, 3, 4, 18, 5, 0, 0, time.Local)
	assert.Equal(t, "04.03.2026", DisplayDate(ts))
	assert.Equal(t, "18:05", DisplayTime(ts))
}

func TestDayBoundsAndTomorrow(t *testing.T) {
	now := time.Date(2026, 3, 14, 17, 59, 12, 0, time.Local)

	start, end := DayBounds(now)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), Tomorrow(now))
}
