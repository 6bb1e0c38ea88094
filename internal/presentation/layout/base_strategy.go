package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-emotilog/internal/util"
)

// BaseStrategy provides common functionality for all screen strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// TopBorder draws the rounded top edge of a frame
func (b *BaseStrategy) TopBorder(w io.Writer, width int) {
	fmt.Fprintln(w, "╭"+strings.Repeat("─", width-2)+"╮")
}

// BottomBorder draws the rounded bottom edge of a frame
func (b *BaseStrategy) BottomBorder(w io.Writer, width int) {
	fmt.Fprintln(w, "╰"+strings.Repeat("─", width-2)+"╯")
}

// SeparatorLine draws a divider inside a frame
func (b *BaseStrategy) SeparatorLine(w io.Writer, width int) {
	fmt.Fprintln(w, "├"+strings.Repeat("─", width-2)+"┤")
}

// BoxHeader draws a centered, colored title row
func (b *BaseStrategy) BoxHeader(w io.Writer, title string, width int) {
	inner := width - 2
	titleWidth := util.GetDisplayWidth(title)
	if titleWidth >= inner {
		fmt.Fprintln(w, "│"+b.GetSizer().Fit(title, inner)+"│")
		return
	}
	left := (inner - titleWidth) / 2
	fmt.Fprintln(w, "│"+strings.Repeat(" ", left)+util.FormatHeaderTitle(title)+strings.Repeat(" ", inner-titleWidth-left)+"│")
}

// Line draws one content row, padded or truncated to the frame
func (b *BaseStrategy) Line(w io.Writer, content string, width int) {
	fmt.Fprintln(w, "│ "+b.GetSizer().Fit(content, width-4)+" │")
}

// SectionTitle draws a colored section heading row
func (b *BaseStrategy) SectionTitle(w io.Writer, title string, width int) {
	inner := width - 4
	titleWidth := util.GetDisplayWidth(title)
	if titleWidth >= inner {
		b.Line(w, title, width)
		return
	}
	fmt.Fprintln(w, "│ "+util.FormatOverviewTitle(title)+strings.Repeat(" ", inner-titleWidth)+" │")
}

// BlankLine draws an empty content row
func (b *BaseStrategy) BlankLine(w io.Writer, width int) {
	b.Line(w, "", width)
}

// KeyHints renders a row of "[k] Label" hints below a frame
func (b *BaseStrategy) KeyHints(w io.Writer, hints ...string) {
	fmt.Fprintln(w, " "+strings.Join(hints, "  "))
}

// ProgressBar creates a progress bar with optional label
func (b *BaseStrategy) ProgressBar(percentage float64, width int, label string) string {
	bar := util.CreateProgressBar(percentage, width)
	if label != "" {
		return fmt.Sprintf("%s %s", bar, label)
	}
	return bar
}
