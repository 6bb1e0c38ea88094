package util

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ClearScreen      = "\033[2J"
	ClearLine        = "\033[2K"
	ClearToScreenEnd = "\033[J"
	ClearScrollback  = "\033[3J"
	MoveCursorHome   = "\033[H"
	HideCursor       = "\033[?25l"
	ShowCursor       = "\033[?25h"
	EnterAltScreen   = "\033[?1049h"
	ExitAltScreen    = "\033[?1049l"
)

var (
	headerStyle   = color.New(color.Bold, color.FgMagenta)
	overviewStyle = color.New(color.Bold, color.FgCyan)
	dataStyle     = color.New(color.Bold, color.FgGreen)
	statusStyle   = color.New(color.FgYellow)
)

// GetDisplayWidth calculates the display width of a string, accounting for emojis
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// CreateProgressBar renders percentage (0-100) as a bar of barWidth cells
func CreateProgressBar(percentage float64, barWidth int) string {
	if barWidth < 1 {
		barWidth = 1
	}
	filled := int((percentage / 100) * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return headerStyle.Sprint(title)
}

// FormatOverviewTitle formats overview/summary titles (Cyan + Bold)
func FormatOverviewTitle(title string) string {
	return overviewStyle.Sprint(title)
}

// FormatDataTitle formats data section titles (Green + Bold)
func FormatDataTitle(title string) string {
	return dataStyle.Sprint(title)
}

// FormatStatus formats transient status messages (Yellow)
func FormatStatus(message string) string {
	return statusStyle.Sprint(message)
}

// FormatSectionSeparator creates a visual separator line of the given width
func FormatSectionSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return overviewStyle.Sprint(strings.Repeat("─", width))
}

// CenterText centers text within the given display width
func CenterText(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return runewidth.Truncate(text, width, "")
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-padding-textWidth)
}
