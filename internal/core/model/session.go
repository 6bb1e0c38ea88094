package model

import "time"

// Screen identifies the view shown by the interactive session
type Screen int

const (
	ScreenMain Screen = iota
	ScreenLogs
	ScreenSummary
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenLogs:
		return "logs"
	case ScreenSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// InteractionState represents the current UI interaction state
type InteractionState struct {
	Screen        Screen
	ShowHelp      bool
	StatusMessage string    // Status message to display
	StatusAt      time.Time // When StatusMessage was set
}

// StatusVisible reports whether the status message is still fresh at now
func (s InteractionState) StatusVisible(now time.Time, ttl time.Duration) bool {
	if s.StatusMessage == "" {
		return false
	}
	return ttl <= 0 || now.Sub(s.StatusAt) < ttl
}
