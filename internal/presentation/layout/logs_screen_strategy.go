package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/go-emotilog/internal/core/constants"
)

// LogsScreenStrategy renders every entry, newest first
type LogsScreenStrategy struct {
	BaseStrategy
}

func (s *LogsScreenStrategy) GetName() string {
	return "Logs"
}

func (s *LogsScreenStrategy) Render(w io.Writer, view View) {
	width := frameWidth(view)
	overall := view.Report.Overall

	s.TopBorder(w, width)
	s.BoxHeader(w, "Emotion Logs", width)
	s.SeparatorLine(w, width)
	s.Line(w, fmt.Sprintf("Total Logs: %d", len(view.Logs)), width)
	if overall.HasMostFrequent {
		s.Line(w, "Most Frequent: "+overall.MostFrequent, width)
	}

	if len(view.Logs) == 0 {
		s.BlankLine(w, width)
		s.Line(w, "No emotions logged yet.", width)
		s.Line(w, "Start logging your feelings!", width)
	} else {
		s.SeparatorLine(w, width)
		s.rows(w, view, width)
	}

	s.BottomBorder(w, width)
	s.KeyHints(w, "[b] Back", "[s] Summary", "[h] Help", "[q] Quit")
}

func (s *LogsScreenStrategy) rows(w io.Writer, view View, width int) {
	logs := view.Logs
	hidden := 0
	if view.MaxRows > 0 && len(logs) > view.MaxRows {
		hidden = len(logs) - view.MaxRows
		logs = logs[:view.MaxRows]
	}

	inner := width - 4
	for _, e := range logs {
		label := e.Emotion
		if glyph := constants.GlyphFor(e.Emotion); glyph != "" {
			label = glyph + " " + label
		}
		stamp := e.FormattedDateTime(view.Location)
		labelWidth := inner - len(stamp) - 1
		if labelWidth < 1 {
			s.Line(w, label, width)
			continue
		}
		s.Line(w, s.GetSizer().Fit(label, labelWidth)+" "+stamp, width)
	}

	if hidden > 0 {
		s.Line(w, fmt.Sprintf("… and %d more", hidden), width)
	}
}
