package aggregator

import (
	"sort"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/constants"
	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/util"
)

// Source is the read side of the emotion log store
type Source interface {
	Location() *time.Location
	Now() time.Time
	LogsForDay(t time.Time) []model.LogEntry
	RankedEmotions() []model.EmotionCount
	RankedEmotionsForDay(t time.Time) []model.EmotionCount
}

// Aggregator derives statistics snapshots from a Source.
type Aggregator struct {
	source Source
	recent int
}

// EmotionShare is one line of the overall breakdown
type EmotionShare struct {
	Emotion    string  `json:"emotion"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// OverallStats summarizes the whole history.
type OverallStats struct {
	Total             int            `json:"total"`
	MostFrequent      string         `json:"mostFrequent,omitempty"`
	MostFrequentCount int            `json:"mostFrequentCount"`
	HasMostFrequent   bool           `json:"hasMostFrequent"`
	Breakdown         []EmotionShare `json:"breakdown"`
}

// DailyStats summarizes a single calendar day.
type DailyStats struct {
	Date   model.Date           `json:"-"`
	Day    string               `json:"day"`
	Total  int                  `json:"total"`
	Counts []model.EmotionCount `json:"counts"`
	Recent []model.LogEntry     `json:"recent"`
}

// Frequency is a ranked count scaled against the most frequent label
type Frequency struct {
	Emotion  string `json:"emotion"`
	Count    int    `json:"count"`
	Progress int    `json:"progress"` // 0-100, relative to the highest count
}

// Report bundles every statistic shown on the summary screen.
type Report struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Location    *time.Location `json:"-"`
	Overall     OverallStats   `json:"overall"`
	Daily       DailyStats     `json:"daily"`
	Frequencies []Frequency    `json:"frequencies"`
}

// New creates an aggregator listing DefaultRecentCount recent entries per day
func New(source Source) *Aggregator {
	return NewWithRecent(source, constants.DefaultRecentCount)
}

// NewWithRecent creates an aggregator listing up to recent entries per day
func NewWithRecent(source Source, recent int) *Aggregator {
	if recent < 0 {
		recent = 0
	}
	return &Aggregator{source: source, recent: recent}
}

// Overall computes totals, the most frequent emotion and the percentage breakdown.
func (a *Aggregator) Overall() OverallStats {
	ranked := a.source.RankedEmotions()
	total := 0
	for _, c := range ranked {
		total += c.Count
	}

	stats := OverallStats{
		Total:     total,
		Breakdown: make([]EmotionShare, 0, len(ranked)),
	}
	if len(ranked) > 0 {
		stats.MostFrequent = ranked[0].Emotion
		stats.MostFrequentCount = ranked[0].Count
		stats.HasMostFrequent = true
	}
	for _, c := range ranked {
		stats.Breakdown = append(stats.Breakdown, EmotionShare{
			Emotion:    c.Emotion,
			Count:      c.Count,
			Percentage: util.Percentage(c.Count, total),
		})
	}
	return stats
}

// Daily computes the summary of the calendar day containing day.
func (a *Aggregator) Daily(day time.Time) DailyStats {
	loc := a.source.Location()
	logs := a.source.LogsForDay(day)

	recent := make([]model.LogEntry, len(logs))
	copy(recent, logs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].RecordedAt.After(recent[j].RecordedAt)
	})
	if len(recent) > a.recent {
		recent = recent[:a.recent]
	}

	date := model.DateOf(day, loc)
	return DailyStats{
		Date:   date,
		Day:    date.String(),
		Total:  len(logs),
		Counts: a.source.RankedEmotionsForDay(day),
		Recent: recent,
	}
}

// Frequencies returns ranked counts with progress scaled to the highest count.
func (a *Aggregator) Frequencies() []Frequency {
	ranked := a.source.RankedEmotions()

	maxCount := 0
	for _, c := range ranked {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	out := make([]Frequency, 0, len(ranked))
	for _, c := range ranked {
		progress := 0
		if maxCount > 0 {
			progress = int(util.Percentage(c.Count, maxCount))
		}
		out = append(out, Frequency{Emotion: c.Emotion, Count: c.Count, Progress: progress})
	}
	return out
}

// Report computes every statistic, using day as "today".
func (a *Aggregator) Report(day time.Time) Report {
	start := time.Now()
	report := Report{
		GeneratedAt: a.source.Now(),
		Location:    a.source.Location(),
		Overall:     a.Overall(),
		Daily:       a.Daily(day),
		Frequencies: a.Frequencies(),
	}
	util.LogDebugf("Report built in %v: total=%d today=%d emotions=%d",
		time.Since(start), report.Overall.Total, report.Daily.Total, len(report.Frequencies))
	return report
}

// Today computes the report for the source's current day.
func (a *Aggregator) Today() Report {
	return a.Report(a.source.Now())
}
