package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// FormatReport writes one row per emotion with its overall and today's counts
func (f *CSVFormatter) FormatReport(w io.Writer, report aggregator.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Emotion", "Count", "Percentage", "Progress", "Today"}); err != nil {
		return err
	}

	today := make(map[string]int, len(report.Daily.Counts))
	for _, c := range report.Daily.Counts {
		today[c.Emotion] = c.Count
	}

	progress := make(map[string]int, len(report.Frequencies))
	for _, fr := range report.Frequencies {
		progress[fr.Emotion] = fr.Progress
	}

	for _, share := range report.Overall.Breakdown {
		record := []string{
			share.Emotion,
			strconv.Itoa(share.Count),
			fmt.Sprintf("%.1f", share.Percentage),
			strconv.Itoa(progress[share.Emotion]),
			strconv.Itoa(today[share.Emotion]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{"Total", strconv.Itoa(report.Overall.Total), "", "", strconv.Itoa(report.Daily.Total)}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

func (f *CSVFormatter) FormatLogs(w io.Writer, logs []model.LogEntry, loc *time.Location) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Emotion", "Recorded At", "Timestamp"}); err != nil {
		return err
	}
	for _, row := range toLogRows(logs, loc) {
		record := []string{row.ID, row.Emotion, row.RecordedAt, strconv.FormatInt(row.Timestamp, 10)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
