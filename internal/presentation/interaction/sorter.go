package interaction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/penwyp/go-emotilog/internal/core/model"
)

// SortField represents the field to sort log entries by
type SortField int

const (
	SortByInsertion SortField = iota
	SortByTime
	SortByEmotion
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

var sortFieldNames = map[string]SortField{
	"insertion": SortByInsertion,
	"time":      SortByTime,
	"emotion":   SortByEmotion,
}

// ParseSortField resolves a --sort flag value
func ParseSortField(name string) (SortField, error) {
	field, ok := sortFieldNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return SortByInsertion, fmt.Errorf("unknown sort field %q (valid: insertion, time, emotion)", name)
	}
	return field, nil
}

// LogSorter orders log entries. Sorting is stable, so entries that compare
// equal keep their insertion order in both directions.
type LogSorter struct {
	field SortField
	order SortOrder
}

// NewLogSorter creates a sorter listing the newest entries first
func NewLogSorter() *LogSorter {
	return &LogSorter{
		field: SortByTime,
		order: SortDescending,
	}
}

// NewLogSorterFor creates a sorter for field with that field's natural order:
// newest first for time, alphabetical for emotion.
func NewLogSorterFor(field SortField) *LogSorter {
	order := SortAscending
	if field == SortByTime {
		order = SortDescending
	}
	return &LogSorter{field: field, order: order}
}

// SetOrder changes the sort direction
func (s *LogSorter) SetOrder(order SortOrder) {
	s.order = order
}

// Sort sorts the entries in place based on current settings
func (s *LogSorter) Sort(logs []model.LogEntry) {
	if s.field == SortByInsertion {
		if s.order == SortDescending {
			for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
				logs[i], logs[j] = logs[j], logs[i]
			}
		}
		return
	}

	sort.SliceStable(logs, func(i, j int) bool {
		a, b := logs[i], logs[j]
		if s.order == SortDescending {
			a, b = b, a
		}

		switch s.field {
		case SortByTime:
			return a.RecordedAt.Before(b.RecordedAt)
		case SortByEmotion:
			return a.Emotion < b.Emotion
		}
		return false
	})
}
