package layout

import (
	"io"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
)

// View is the data a screen renders
type View struct {
	Width    int
	MaxRows  int // log rows shown on the logs screen, 0 for all
	Location *time.Location
	Logs     []model.LogEntry // newest first
	Report   aggregator.Report
}

// ScreenStrategy defines the interface for rendering one screen of the session
type ScreenStrategy interface {
	Render(w io.Writer, view View)
	GetName() string
}

// GetScreenStrategy returns the strategy for the current interaction state
func GetScreenStrategy(state model.InteractionState) ScreenStrategy {
	if state.ShowHelp {
		return &HelpScreenStrategy{}
	}

	strategies := map[model.Screen]ScreenStrategy{
		model.ScreenMain:    &MainScreenStrategy{},
		model.ScreenLogs:    &LogsScreenStrategy{},
		model.ScreenSummary: &SummaryScreenStrategy{},
	}

	if strategy, exists := strategies[state.Screen]; exists {
		return strategy
	}

	// Default to the emotion grid for unknown screens
	return &MainScreenStrategy{}
}

func frameWidth(view View) int {
	if view.Width <= 0 {
		return sharedSizer.GetMaxWidth()
	}
	return ClampWidth(view.Width)
}
