package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-emotilog/internal/util"
	"golang.org/x/term"
)

const (
	defaultWidth = 64
	minWidth     = 40
	maxWidth     = 96
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct {
}

// displayWidth calculates the actual display width of a string containing emojis and Unicode characters
func (i Sizer) displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width, handling emojis correctly
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Fit pads or truncates s to exactly width display cells
func (i Sizer) Fit(s string, width int) string {
	if i.displayWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return i.PadString(s, width, true)
}

// GetMaxWidth returns the frame width for the current terminal
func (i Sizer) GetMaxWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		util.LogDebugf("GetMaxWidth: terminal size unavailable (%v), using %d", err, defaultWidth)
		return defaultWidth
	}
	return ClampWidth(termWidth - 2)
}

// ClampWidth bounds a frame width to the range screens are laid out for
func ClampWidth(width int) int {
	switch {
	case width < minWidth:
		return minWidth
	case width > maxWidth:
		return maxWidth
	default:
		return width
	}
}
