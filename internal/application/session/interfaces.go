package session

import (
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
	"github.com/penwyp/go-emotilog/internal/presentation/interaction"
	"github.com/penwyp/go-emotilog/internal/presentation/layout"
)

// LogStore is the emotion log the session writes to and reads from
type LogStore interface {
	aggregator.Source
	// AddLog records an emotion at the current time
	AddLog(emotion string) model.LogEntry
	// LogsSortedByTime returns every entry, newest first
	LogsSortedByTime() []model.LogEntry
	// TotalLogCount returns the number of entries
	TotalLogCount() int
}

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// Render draws the screen selected by state
	Render(view layout.View, state model.InteractionState, now time.Time)
}

// InputHandler processes keyboard and other input events
type InputHandler interface {
	// Events returns a channel of keyboard events, closed when input ends
	Events() <-chan interaction.KeyEvent
	// Close cleans up input handler resources
	Close() error
}
