package aggregator

import (
	"testing"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/core/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedStore builds a store whose clock replays the given instants
func scriptedStore(t *testing.T, now time.Time, events []struct {
	emotion string
	at      time.Time
}) *store.Store {
	t.Helper()
	i := 0
	clock := func() time.Time {
		if i < len(events) {
			at := events[i].at
			i++
			return at
		}
		return now
	}
	s := store.New(store.WithClock(clock), store.WithLocation(time.UTC))
	for _, e := range events {
		s.AddLog(e.emotion)
	}
	return s
}

type event = struct {
	emotion string
	at      time.Time
}

var (
	today     = time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	yesterday = time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC)
)

func sampleStore(t *testing.T) *store.Store {
	return scriptedStore(t, today, []event{
		{"Sad", yesterday},
		{"Sad", yesterday.Add(time.Hour)},
		{"Happy", today.Add(-6 * time.Hour)},
		{"Happy", today.Add(-5 * time.Hour)},
		{"Tired", today.Add(-4 * time.Hour)},
		{"Happy", today.Add(-3 * time.Hour)},
		{"Loved", today.Add(-2 * time.Hour)},
		{"Sick", today.Add(-1 * time.Hour)},
	})
}

func TestOverallEmpty(t *testing.T) {
	agg := New(store.New())
	overall := agg.Overall()

	assert.Equal(t, 0, overall.Total)
	assert.False(t, overall.HasMostFrequent)
	assert.Equal(t, "", overall.MostFrequent)
	assert.NotNil(t, overall.Breakdown)
	assert.Empty(t, overall.Breakdown)
}

func TestOverall(t *testing.T) {
	overall := New(sampleStore(t)).Overall()

	assert.Equal(t, 8, overall.Total)
	require.True(t, overall.HasMostFrequent)
	assert.Equal(t, "Happy", overall.MostFrequent)
	assert.Equal(t, 3, overall.MostFrequentCount)

	require.Len(t, overall.Breakdown, 5)
	assert.Equal(t, EmotionShare{Emotion: "Happy", Count: 3, Percentage: 37.5}, overall.Breakdown[0])
	assert.Equal(t, EmotionShare{Emotion: "Sad", Count: 2, Percentage: 25}, overall.Breakdown[1])
	assert.Equal(t, "Tired", overall.Breakdown[2].Emotion)

	sum := 0.0
	for _, share := range overall.Breakdown {
		sum += share.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestDaily(t *testing.T) {
	daily := New(sampleStore(t)).Daily(today)

	assert.Equal(t, "2024-06-15", daily.Day)
	assert.Equal(t, model.Date{Year: 2024, Month: time.June, Day: 15}, daily.Date)
	assert.Equal(t, 6, daily.Total)
	assert.Equal(t, []model.EmotionCount{
		{Emotion: "Happy", Count: 3},
		{Emotion: "Tired", Count: 1},
		{Emotion: "Loved", Count: 1},
		{Emotion: "Sick", Count: 1},
	}, daily.Counts)

	require.Len(t, daily.Recent, 5)
	got := make([]string, len(daily.Recent))
	for i, e := range daily.Recent {
		got[i] = e.Emotion
		assert.True(t, e.SameDay(today, time.UTC))
	}
	assert.Equal(t, []string{"Sick", "Loved", "Happy", "Tired", "Happy"}, got)
}

func TestDailyRecentLimit(t *testing.T) {
	s := sampleStore(t)

	assert.Len(t, NewWithRecent(s, 2).Daily(today).Recent, 2)
	assert.Empty(t, NewWithRecent(s, 0).Daily(today).Recent)
	assert.Empty(t, NewWithRecent(s, -3).Daily(today).Recent)
	assert.Len(t, NewWithRecent(s, 50).Daily(today).Recent, 6)
	assert.Len(t, NewWithRecent(s, 50).Daily(yesterday).Recent, 2)
}

func TestDailyEmptyDay(t *testing.T) {
	daily := New(sampleStore(t)).Daily(today.AddDate(0, 0, 3))

	assert.Equal(t, 0, daily.Total)
	assert.Empty(t, daily.Counts)
	assert.Empty(t, daily.Recent)
}

func TestFrequencies(t *testing.T) {
	freqs := New(sampleStore(t)).Frequencies()

	assert.Equal(t, []Frequency{
		{Emotion: "Happy", Count: 3, Progress: 100},
		{Emotion: "Sad", Count: 2, Progress: 66},
		{Emotion: "Tired", Count: 1, Progress: 33},
		{Emotion: "Loved", Count: 1, Progress: 33},
		{Emotion: "Sick", Count: 1, Progress: 33},
	}, freqs)

	assert.Empty(t, New(store.New()).Frequencies())
}

func TestReport(t *testing.T) {
	s := sampleStore(t)
	report := New(s).Today()

	assert.Equal(t, today, report.GeneratedAt)
	assert.Equal(t, time.UTC, report.Location)
	assert.Equal(t, 8, report.Overall.Total)
	assert.Equal(t, 6, report.Daily.Total)
	assert.Len(t, report.Frequencies, 5)
}
