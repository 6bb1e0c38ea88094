package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/go-emotilog/internal/core/constants"
)

// HelpScreenStrategy renders the keyboard reference
type HelpScreenStrategy struct {
	BaseStrategy
}

func (s *HelpScreenStrategy) GetName() string {
	return "Help"
}

func (s *HelpScreenStrategy) Render(w io.Writer, view View) {
	width := frameWidth(view)

	s.TopBorder(w, width)
	s.BoxHeader(w, "Emotilog - Help", width)
	s.SeparatorLine(w, width)
	s.SectionTitle(w, "Keyboard Shortcuts", width)
	for _, e := range constants.Emotions() {
		s.Line(w, fmt.Sprintf("  %c         - Log %s %s", e.Key, e.Glyph, e.Label), width)
	}
	s.Line(w, "  l         - Show all logs, newest first", width)
	s.Line(w, "  s         - Show the summary", width)
	s.Line(w, "  b/Esc     - Back to the emotion grid", width)
	s.Line(w, "  h         - Show or hide this help", width)
	s.Line(w, "  q/Ctrl+C  - Quit the program", width)
	s.BlankLine(w, width)
	s.Line(w, "Logs are kept in memory and cleared when you quit.", width)
	s.BottomBorder(w, width)
	s.KeyHints(w, "Press 'h' to return...")
}
