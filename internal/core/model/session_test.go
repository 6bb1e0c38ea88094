package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScreenString(t *testing.T) {
	assert.Equal(t, "main", ScreenMain.String())
	assert.Equal(t, "logs", ScreenLogs.String())
	assert.Equal(t, "summary", ScreenSummary.String())
	assert.Equal(t, "unknown", Screen(42).String())
}

func TestInteractionStateStatusVisible(t *testing.T) {
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		state InteractionState
		now   time.Time
		ttl   time.Duration
		want  bool
	}{
		{"empty message", InteractionState{StatusAt: at}, at, time.Second, false},
		{"fresh", InteractionState{StatusMessage: "Happy logged!", StatusAt: at}, at.Add(time.Second), 2 * time.Second, true},
		{"expired", InteractionState{StatusMessage: "Happy logged!", StatusAt: at}, at.Add(2 * time.Second), 2 * time.Second, false},
		{"no ttl", InteractionState{StatusMessage: "Happy logged!", StatusAt: at}, at.Add(time.Hour), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.StatusVisible(tt.now, tt.ttl))
		})
	}
}
