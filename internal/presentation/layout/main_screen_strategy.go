package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/go-emotilog/internal/core/constants"
	"github.com/penwyp/go-emotilog/internal/util"
)

// MainScreenStrategy renders the emotion grid
type MainScreenStrategy struct {
	BaseStrategy
}

func (s *MainScreenStrategy) GetName() string {
	return "Main"
}

func (s *MainScreenStrategy) Render(w io.Writer, view View) {
	width := frameWidth(view)

	s.TopBorder(w, width)
	s.BoxHeader(w, "Emotilog", width)
	s.SeparatorLine(w, width)
	s.Line(w, "How are you feeling?", width)
	s.BlankLine(w, width)
	s.grid(w, width)
	s.BlankLine(w, width)
	s.SeparatorLine(w, width)
	s.Line(w, s.todayLine(view), width)
	s.BottomBorder(w, width)
	s.KeyHints(w, "[1-9] Log", "[l] Logs", "[s] Summary", "[h] Help", "[q] Quit")
}

func (s *MainScreenStrategy) grid(w io.Writer, width int) {
	emotions := constants.Emotions()
	cellWidth := (width - 4) / constants.GridColumns

	for start := 0; start < len(emotions); start += constants.GridColumns {
		row := ""
		for _, e := range emotions[start:min(start+constants.GridColumns, len(emotions))] {
			cell := fmt.Sprintf("[%c] %s %s", e.Key, e.Glyph, e.Label)
			row += s.GetSizer().PadString(cell, cellWidth, true)
		}
		s.Line(w, row, width)
	}
}

func (s *MainScreenStrategy) todayLine(view View) string {
	overall := view.Report.Overall
	line := fmt.Sprintf("Today: %s   Total: %s",
		util.FormatCount(view.Report.Daily.Total), util.FormatCount(overall.Total))
	if overall.HasMostFrequent {
		line += "   Most frequent: " + overall.MostFrequent
	}
	return line
}
