// Package store holds the in-memory emotion log and its derived queries.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/util"
)

// Store is an append-only, in-memory sequence of log entries.
// Insertion order is chronological order. Every read and write is
// serialized by a single mutex and every result is a copy.
type Store struct {
	mu      sync.Mutex
	entries []model.LogEntry

	clock    func() time.Time
	location *time.Location
	newID    func() string
}

// Option configures a Store
type Option func(*Store)

// WithClock sets the clock used to stamp new entries
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation sets the timezone in which calendar days are compared
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithIDGenerator sets the entry ID generator
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		entries:  make([]model.LogEntry, 0),
		clock:    time.Now,
		location: time.Local,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the timezone used for day comparisons
func (s *Store) Location() *time.Location {
	return s.location
}

// Now returns the store clock reading in the store location
func (s *Store) Now() time.Time {
	return s.clock().In(s.location)
}

// AddLog appends a new entry stamped with the current time.
// The label is stored verbatim; empty and repeated labels are accepted.
func (s *Store) AddLog(emotion string) model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.NewLogEntry(s.newID(), emotion, s.clock())
	s.entries = append(s.entries, entry)

	util.LogDebug("Emotion logged",
		util.F("emotion", emotion),
		util.F("timestamp", entry.Timestamp()),
		util.F("total", len(s.entries)))
	return entry
}

// Logs returns all entries in insertion order
func (s *Store) Logs() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// LogsSortedByTime returns all entries, most recent first.
// Entries with equal timestamps keep their insertion order.
func (s *Store) LogsSortedByTime() []model.LogEntry {
	out := s.Logs()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}

// LogsForEmotion returns entries whose label equals emotion exactly
func (s *Store) LogsForEmotion(emotion string) []model.LogEntry {
	return s.filter(func(e model.LogEntry) bool { return e.Emotion == emotion })
}

// LogsForDay returns entries recorded on the calendar day of t
func (s *Store) LogsForDay(t time.Time) []model.LogEntry {
	return s.filter(s.onDay(t))
}

// EmotionCounts returns the number of entries per label
func (s *Store) EmotionCounts() map[string]int {
	return s.count(nil)
}

// EmotionCountsForDay returns the number of entries per label on the calendar day of t
func (s *Store) EmotionCountsForDay(t time.Time) map[string]int {
	return s.count(s.onDay(t))
}

// TotalLogCount returns the number of entries
func (s *Store) TotalLogCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// LogCountForDay returns the number of entries on the calendar day of t
func (s *Store) LogCountForDay(t time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := s.onDay(t)
	n := 0
	for _, e := range s.entries {
		if match(e) {
			n++
		}
	}
	return n
}

// MostFrequentEmotion returns the label with the highest count.
// Among labels sharing the maximum, the one logged first wins.
// The boolean is false when the store is empty.
func (s *Store) MostFrequentEmotion() (string, bool) {
	ranked := s.RankedEmotions()
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Emotion, true
}

// RankedEmotions returns per-label counts ordered by count descending,
// ties broken by first appearance
func (s *Store) RankedEmotions() []model.EmotionCount {
	return s.rank(nil)
}

// RankedEmotionsForDay is RankedEmotions restricted to the calendar day of t
func (s *Store) RankedEmotionsForDay(t time.Time) []model.EmotionCount {
	return s.rank(s.onDay(t))
}

func (s *Store) onDay(t time.Time) func(model.LogEntry) bool {
	day := model.DateOf(t, s.location)
	return func(e model.LogEntry) bool {
		return model.DateOf(e.RecordedAt, s.location) == day
	}
}

func (s *Store) filter(match func(model.LogEntry) bool) []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.LogEntry, 0)
	for _, e := range s.entries {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) count(match func(model.LogEntry) bool) map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, e := range s.entries {
		if match == nil || match(e) {
			counts[e.Emotion]++
		}
	}
	return counts
}

func (s *Store) rank(match func(model.LogEntry) bool) []model.EmotionCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int)
	ranked := make([]model.EmotionCount, 0)
	for _, e := range s.entries {
		if match != nil && !match(e) {
			continue
		}
		i, ok := index[e.Emotion]
		if !ok {
			i = len(ranked)
			index[e.Emotion] = i
			ranked = append(ranked, model.EmotionCount{Emotion: e.Emotion})
		}
		ranked[i].Count++
	}

	// ranked is in first-seen order, so a stable sort keeps that order among ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
