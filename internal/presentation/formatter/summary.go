package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
	"github.com/penwyp/go-emotilog/internal/util"
)

const summaryRuleWidth = 40

// SummaryFormatter writes the plain-text statistics report.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// FormatReport writes the overall section followed by the daily section.
func (f *SummaryFormatter) FormatReport(w io.Writer, report aggregator.Report) error {
	var b strings.Builder
	writeOverall(&b, report.Overall)
	b.WriteString("\n")
	writeDaily(&b, report.Daily, report.Location)
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatLogs writes one "<emotion> at HH:mm:ss" line per entry.
func (f *SummaryFormatter) FormatLogs(w io.Writer, logs []model.LogEntry, loc *time.Location) error {
	var b strings.Builder
	if len(logs) == 0 {
		b.WriteString("No emotions logged yet.\n")
	}
	for _, e := range logs {
		fmt.Fprintf(&b, "%s at %s\n", e.Emotion, e.FormattedTime(loc))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeOverall(b *strings.Builder, stats aggregator.OverallStats) {
	b.WriteString("OVERALL STATISTICS\n")
	b.WriteString(strings.Repeat("=", summaryRuleWidth) + "\n")

	if stats.Total == 0 {
		b.WriteString("No emotions logged yet.\n")
		b.WriteString("Start logging your feelings!\n")
		return
	}

	fmt.Fprintf(b, "Total Emotions Logged: %s\n", util.FormatCount(stats.Total))
	if stats.HasMostFrequent {
		fmt.Fprintf(b, "Most Frequent: %s (%s)\n", stats.MostFrequent, util.FormatTimes(stats.MostFrequentCount))
	}
	b.WriteString("\nEmotion Breakdown:\n")
	for _, s := range stats.Breakdown {
		fmt.Fprintf(b, "  • %s: %d (%s)\n", s.Emotion, s.Count, util.FormatPercentage(s.Percentage))
	}
}

func writeDaily(b *strings.Builder, stats aggregator.DailyStats, loc *time.Location) {
	fmt.Fprintf(b, "TODAY'S SUMMARY (%s)\n", stats.Date.Start(loc).Format(model.LayoutDate))
	b.WriteString(strings.Repeat("=", summaryRuleWidth) + "\n")

	if stats.Total == 0 {
		b.WriteString("No emotions logged today yet.\n")
		b.WriteString("Log your first emotion!\n")
		return
	}

	fmt.Fprintf(b, "Total Logs Today: %d\n", stats.Total)
	b.WriteString("\nToday's Emotions:\n")
	for _, c := range stats.Counts {
		fmt.Fprintf(b, "  • %s: %d\n", c.Emotion, c.Count)
	}
	b.WriteString("\nRecent Activity:\n")
	for _, e := range stats.Recent {
		fmt.Fprintf(b, "  • %s at %s\n", e.Emotion, e.FormattedTime(loc))
	}
}
