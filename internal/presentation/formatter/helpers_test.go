package formatter

import (
	"fmt"
	"testing"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/core/store"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
)

var reportDay = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

// scriptedClock hands out the given instants in order, then repeats the last
func scriptedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// sampleStore holds Tired on the previous day and Happy, Sad, Happy on reportDay
func sampleStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(
		store.WithLocation(time.UTC),
		store.WithIDGenerator(sequentialIDs()),
		store.WithClock(scriptedClock(
			time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 10, 15, 0, 0, time.UTC),
		)),
	)
	for _, emotion := range []string{"Tired", "Happy", "Sad", "Happy"} {
		s.AddLog(emotion)
	}
	return s
}

func sampleReport(t *testing.T) aggregator.Report {
	return aggregator.New(sampleStore(t)).Report(reportDay)
}

func emptyReport() aggregator.Report {
	s := store.New(store.WithLocation(time.UTC), store.WithClock(func() time.Time { return reportDay }))
	return aggregator.New(s).Report(reportDay)
}

func sampleLogs(t *testing.T) []model.LogEntry {
	return sampleStore(t).Logs()
}
