package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/presentation/layout"
	"github.com/penwyp/go-emotilog/internal/util"
)

// DisplayConfig controls how screens are drawn
type DisplayConfig struct {
	Width     int           // frame width, 0 to follow the terminal
	MaxRows   int           // log rows on the logs screen, 0 for all
	StatusTTL time.Duration // how long a status message stays visible, 0 for forever
}

type TerminalDisplay struct {
	config            *DisplayConfig
	out               io.Writer
	inAlternateScreen bool
	isFirstRender     bool
	lastStrategy      string
}

func NewTerminalDisplay(out io.Writer, config *DisplayConfig) *TerminalDisplay {
	if config == nil {
		config = &DisplayConfig{}
	}
	return &TerminalDisplay{
		config:        config,
		out:           out,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.EnterAltScreen+util.ClearScreen+util.ClearScrollback+util.MoveCursorHome+util.HideCursor)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.ClearScreen+util.MoveCursorHome+util.ShowCursor+util.ExitAltScreen)
	td.inAlternateScreen = false
}

// Render draws the screen selected by state. The frame is built off-screen and
// written in one call so the terminal never shows a half-drawn screen.
func (td *TerminalDisplay) Render(view layout.View, state model.InteractionState, now time.Time) {
	if view.Width <= 0 {
		view.Width = td.config.Width
	}
	if view.MaxRows <= 0 {
		view.MaxRows = td.config.MaxRows
	}

	strategy := layout.GetScreenStrategy(state)

	var buf bytes.Buffer
	if td.inAlternateScreen {
		// Switching screens needs a full clear; redraws of the same screen only home the cursor.
		if td.isFirstRender || strategy.GetName() != td.lastStrategy {
			buf.WriteString(util.ClearScreen)
		}
		buf.WriteString(util.MoveCursorHome)
	}
	td.isFirstRender = false
	td.lastStrategy = strategy.GetName()

	strategy.Render(&buf, view)

	if state.StatusVisible(now, td.config.StatusTTL) {
		width := view.Width
		if width <= 0 {
			width = 60
		}
		for _, line := range wrapText("Status: "+state.StatusMessage, width) {
			buf.WriteString(util.ClearLine + " " + util.FormatStatus(line) + "\n")
		}
	} else if td.inAlternateScreen {
		buf.WriteString(util.ClearLine + "\n")
	}

	if td.inAlternateScreen {
		buf.WriteString(util.ClearToScreenEnd)
	}

	if _, err := td.out.Write(buf.Bytes()); err != nil {
		util.LogWarnf("Render %s screen: %v", strategy.GetName(), err)
	}
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if text == "" {
		return []string{}
	}

	if util.GetDisplayWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if util.GetDisplayWidth(currentLine)+1+util.GetDisplayWidth(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
