package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/go-emotilog/internal/core/constants"
	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/util"
)

// SummaryScreenStrategy renders overall and daily statistics with frequency bars
type SummaryScreenStrategy struct {
	BaseStrategy
}

func (s *SummaryScreenStrategy) GetName() string {
	return "Summary"
}

func (s *SummaryScreenStrategy) Render(w io.Writer, view View) {
	width := frameWidth(view)

	s.TopBorder(w, width)
	s.BoxHeader(w, "Summary", width)
	s.SeparatorLine(w, width)
	s.overallSection(w, view, width)
	s.SeparatorLine(w, width)
	s.dailySection(w, view, width)
	if len(view.Report.Frequencies) > 0 {
		s.SeparatorLine(w, width)
		s.frequencySection(w, view, width)
	}
	s.BottomBorder(w, width)
	s.KeyHints(w, "[b] Back", "[l] Logs", "[h] Help", "[q] Quit")
}

func (s *SummaryScreenStrategy) overallSection(w io.Writer, view View, width int) {
	stats := view.Report.Overall
	s.SectionTitle(w, "OVERALL STATISTICS", width)

	if stats.Total == 0 {
		s.Line(w, "No emotions logged yet.", width)
		s.Line(w, "Start logging your feelings!", width)
		return
	}

	s.Line(w, "Total Emotions Logged: "+util.FormatCount(stats.Total), width)
	if stats.HasMostFrequent {
		s.Line(w, fmt.Sprintf("Most Frequent: %s (%s)", stats.MostFrequent, util.FormatTimes(stats.MostFrequentCount)), width)
	}
	s.BlankLine(w, width)
	s.Line(w, "Emotion Breakdown:", width)
	for _, share := range stats.Breakdown {
		s.Line(w, fmt.Sprintf("  • %s: %d (%s)", share.Emotion, share.Count, util.FormatPercentage(share.Percentage)), width)
	}
}

func (s *SummaryScreenStrategy) dailySection(w io.Writer, view View, width int) {
	daily := view.Report.Daily
	s.SectionTitle(w, fmt.Sprintf("TODAY'S SUMMARY (%s)", daily.Date.Start(view.Location).Format(model.LayoutDate)), width)

	if daily.Total == 0 {
		s.Line(w, "No emotions logged today yet.", width)
		s.Line(w, "Log your first emotion!", width)
		return
	}

	s.Line(w, fmt.Sprintf("Total Logs Today: %d", daily.Total), width)
	s.BlankLine(w, width)
	s.Line(w, "Today's Emotions:", width)
	for _, c := range daily.Counts {
		s.Line(w, fmt.Sprintf("  • %s: %d", c.Emotion, c.Count), width)
	}
	s.BlankLine(w, width)
	s.Line(w, "Recent Activity:", width)
	for _, e := range daily.Recent {
		s.Line(w, fmt.Sprintf("  • %s at %s", e.Emotion, e.FormattedTime(view.Location)), width)
	}
}

func (s *SummaryScreenStrategy) frequencySection(w io.Writer, view View, width int) {
	s.SectionTitle(w, "FREQUENCY", width)

	labels := make([]string, 0, len(view.Report.Frequencies))
	labelWidth := 0
	for _, f := range view.Report.Frequencies {
		label := f.Emotion
		if glyph := constants.GlyphFor(f.Emotion); glyph != "" {
			label = glyph + " " + label
		}
		labels = append(labels, label)
		labelWidth = max(labelWidth, util.GetDisplayWidth(label))
	}

	barWidth := width - 4 - labelWidth - 10
	if barWidth < 5 {
		barWidth = 5
	}
	for i, f := range view.Report.Frequencies {
		row := s.GetSizer().PadString(labels[i], labelWidth, true) + " " +
			s.ProgressBar(float64(f.Progress), barWidth, fmt.Sprintf("%d", f.Count))
		s.Line(w, row, width)
	}
}
