package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-emotilog/internal/core/constants"
	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
	"github.com/penwyp/go-emotilog/internal/util"
)

const progressBarWidth = 20

// TableFormatter draws box tables, measuring cells by display width so
// emoji glyphs stay aligned.
type TableFormatter struct{}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// FormatReport prints the frequency table followed by a one-line daily summary
func (f *TableFormatter) FormatReport(w io.Writer, report aggregator.Report) error {
	headers := []string{"Emotion", "Count", "Share", "Frequency"}
	rightAligned := []bool{false, true, true, false}

	shares := make(map[string]float64, len(report.Overall.Breakdown))
	for _, s := range report.Overall.Breakdown {
		shares[s.Emotion] = s.Percentage
	}

	rows := make([][]string, 0, len(report.Frequencies))
	for _, fr := range report.Frequencies {
		rows = append(rows, []string{
			emotionLabel(fr.Emotion),
			util.FormatCount(fr.Count),
			util.FormatPercentage(shares[fr.Emotion]),
			util.CreateProgressBar(float64(fr.Progress), progressBarWidth),
		})
	}
	totals := []string{"Total", util.FormatCount(report.Overall.Total), "", ""}

	t := &table{headers: headers, rightAligned: rightAligned, rows: rows, footer: totals}
	if err := t.render(w); err != nil {
		return err
	}

	date := report.Daily.Date.Start(report.Location).Format(model.LayoutDate)
	line := fmt.Sprintf("Today (%s): %s logged", date, util.FormatCount(report.Daily.Total))
	if report.Overall.HasMostFrequent {
		line += fmt.Sprintf(" · Most frequent overall: %s (%s)",
			report.Overall.MostFrequent, util.FormatTimes(report.Overall.MostFrequentCount))
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// FormatLogs prints one row per entry in the order given
func (f *TableFormatter) FormatLogs(w io.Writer, logs []model.LogEntry, loc *time.Location) error {
	rows := make([][]string, 0, len(logs))
	for i, e := range logs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			emotionLabel(e.Emotion),
			e.FormattedDateTime(loc),
		})
	}

	t := &table{
		headers:      []string{"#", "Emotion", "Recorded At"},
		rightAligned: []bool{true, false, false},
		rows:         rows,
		footer:       []string{"", "Total", util.FormatCount(len(logs))},
	}
	return t.render(w)
}

// emotionLabel prefixes built-in labels with their glyph
func emotionLabel(emotion string) string {
	if glyph := constants.GlyphFor(emotion); glyph != "" {
		return glyph + " " + emotion
	}
	return emotion
}

type table struct {
	headers      []string
	rightAligned []bool
	rows         [][]string
	footer       []string
}

func (t *table) widths() []int {
	widths := make([]int, len(t.headers))
	measure := func(cells []string) {
		for i, cell := range cells {
			if wd := runewidth.StringWidth(cell); wd > widths[i] {
				widths[i] = wd
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}
	measure(t.footer)
	return widths
}

func (t *table) render(w io.Writer) error {
	widths := t.widths()

	var b strings.Builder
	t.border(&b, widths, "┌", "┬", "┐")
	t.row(&b, widths, t.headers, false)
	t.border(&b, widths, "├", "┼", "┤")
	for _, row := range t.rows {
		t.row(&b, widths, row, true)
	}
	if len(t.footer) > 0 {
		t.border(&b, widths, "├", "┼", "┤")
		t.row(&b, widths, t.footer, true)
	}
	t.border(&b, widths, "└", "┴", "┘")

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *table) border(b *strings.Builder, widths []int, left, middle, right string) {
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func (t *table) row(b *strings.Builder, widths []int, cells []string, align bool) {
	b.WriteString("│")
	for i, cell := range cells {
		pad := strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
		if align && t.rightAligned[i] {
			b.WriteString(" " + pad + cell + " │")
		} else {
			b.WriteString(" " + cell + pad + " │")
		}
	}
	b.WriteString("\n")
}
