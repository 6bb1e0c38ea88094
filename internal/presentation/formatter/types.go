package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
)

// Output format names
const (
	FormatTable   = "table"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatSummary = "summary"
)

// ErrUnknownFormat is returned by New for unsupported format names
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter renders statistics reports and log lists.
type Formatter interface {
	FormatReport(w io.Writer, report aggregator.Report) error
	FormatLogs(w io.Writer, logs []model.LogEntry, loc *time.Location) error
}

// Names lists the supported format names
func Names() []string {
	return []string{FormatTable, FormatJSON, FormatCSV, FormatSummary}
}

// New returns the formatter registered under name
func New(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatTable, "":
		return NewTableFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatCSV:
		return NewCSVFormatter(), nil
	case FormatSummary:
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
}

// LogRow is the serialized form of a log entry
type LogRow struct {
	ID         string `json:"id"`
	Emotion    string `json:"emotion"`
	RecordedAt string `json:"recordedAt"`
	Timestamp  int64  `json:"timestamp"`
}

func toLogRows(logs []model.LogEntry, loc *time.Location) []LogRow {
	rows := make([]LogRow, 0, len(logs))
	for _, e := range logs {
		rows = append(rows, LogRow{
			ID:         e.ID,
			Emotion:    e.Emotion,
			RecordedAt: e.FormattedDateTime(loc),
			Timestamp:  e.Timestamp(),
		})
	}
	return rows
}
