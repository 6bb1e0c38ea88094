package model

import (
	"time"
)

// Display layouts for recorded instants
const (
	LayoutTime     = "15:04:05"
	LayoutDateTime = "Jan 02, 2006 15:04:05"
	LayoutDate     = "Jan 02, 2006"
)

// LogEntry is one recorded emotion event. It is never modified after creation.
type LogEntry struct {
	ID         string    `json:"id"`
	Emotion    string    `json:"emotion"`
	RecordedAt time.Time `json:"recordedAt"`
}

// NewLogEntry creates an entry, truncating the timestamp to millisecond precision
func NewLogEntry(id, emotion string, recordedAt time.Time) LogEntry {
	return LogEntry{
		ID:         id,
		Emotion:    emotion,
		RecordedAt: time.UnixMilli(recordedAt.UnixMilli()).In(recordedAt.Location()),
	}
}

// Timestamp returns milliseconds since the Unix epoch
func (e LogEntry) Timestamp() int64 {
	return e.RecordedAt.UnixMilli()
}

// FormattedTime renders the entry time as HH:mm:ss in loc
func (e LogEntry) FormattedTime(loc *time.Location) string {
	return e.RecordedAt.In(orLocal(loc)).Format(LayoutTime)
}

// FormattedDateTime renders the entry time as "MMM dd, yyyy HH:mm:ss" in loc
func (e LogEntry) FormattedDateTime(loc *time.Location) string {
	return e.RecordedAt.In(orLocal(loc)).Format(LayoutDateTime)
}

// FormattedDate renders the entry date as "MMM dd, yyyy" in loc
func (e LogEntry) FormattedDate(loc *time.Location) string {
	return e.RecordedAt.In(orLocal(loc)).Format(LayoutDate)
}

// SameDay reports whether the entry and t fall on the same calendar date in loc
func (e LogEntry) SameDay(t time.Time, loc *time.Location) bool {
	return DateOf(e.RecordedAt, loc) == DateOf(t, loc)
}

func (e LogEntry) String() string {
	return e.Emotion + " at " + e.FormattedTime(time.Local)
}

// EmotionCount pairs an emotion label with its number of occurrences
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}
