package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestNewLogEntryTruncatesToMillis(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 15, 123456789, time.UTC)
	entry := NewLogEntry("id-1", "Happy", ts)

	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, "Happy", entry.Emotion)
	assert.Equal(t, 123000000, entry.RecordedAt.Nanosecond())
	assert.Equal(t, ts.UnixMilli(), entry.Timestamp())
}

func TestLogEntryFormatting(t *testing.T) {
	entry := NewLogEntry("id", "Sad", time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC))

	tests := []struct {
		name     string
		format   func(*time.Location) string
		loc      *time.Location
		expected string
	}{
		{name: "time UTC", format: entry.FormattedTime, loc: time.UTC, expected: "07:08:09"},
		{name: "date time UTC", format: entry.FormattedDateTime, loc: time.UTC, expected: "Mar 05, 2024 07:08:09"},
		{name: "date UTC", format: entry.FormattedDate, loc: time.UTC, expected: "Mar 05, 2024"},
		{name: "time Tokyo", format: entry.FormattedTime, loc: mustLoad(t, "Asia/Tokyo"), expected: "16:08:09"},
		{name: "date New York", format: entry.FormattedDate, loc: mustLoad(t, "America/New_York"), expected: "Mar 05, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format(tt.loc))
		})
	}
}

func TestLogEntryString(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 0, time.Local)
	entry := NewLogEntry("id", "Loved", ts)
	assert.Equal(t, "Loved at 07:08:09", entry.String())
}

func TestLogEntrySameDay(t *testing.T) {
	utc := time.UTC
	shanghai := mustLoad(t, "Asia/Shanghai")

	// 2024-06-15 20:00 UTC is 2024-06-16 04:00 in Shanghai
	entry := NewLogEntry("id", "Tired", time.Date(2024, 6, 15, 20, 0, 0, 0, utc))

	assert.True(t, entry.SameDay(time.Date(2024, 6, 15, 0, 0, 0, 0, utc), utc))
	assert.False(t, entry.SameDay(time.Date(2024, 6, 16, 1, 0, 0, 0, utc), utc))
	assert.True(t, entry.SameDay(time.Date(2024, 6, 16, 1, 0, 0, 0, utc), shanghai))
	assert.False(t, entry.SameDay(time.Date(2024, 6, 15, 1, 0, 0, 0, utc), shanghai))
}

func TestDate(t *testing.T) {
	d := DateOf(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), time.UTC)
	assert.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d.Start(time.UTC))

	next := DateOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.True(t, d.Before(next))
	assert.False(t, next.Before(d))
	assert.False(t, d.Before(d))

	// nil location means local time
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, DateOf(local, time.Local), DateOf(local, nil))
}
