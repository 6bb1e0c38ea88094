package formatter

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatReport(w io.Writer, report aggregator.Report) error {
	return f.write(w, report)
}

func (f *JSONFormatter) FormatLogs(w io.Writer, logs []model.LogEntry, loc *time.Location) error {
	return f.write(w, toLogRows(logs, loc))
}

func (f *JSONFormatter) write(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
