package session

import (
	"fmt"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/constants"
)

// Config contains configuration for the interactive session
type Config struct {
	// Display settings
	Timezone string
	Width    int // frame width, 0 to follow the terminal
	MaxRows  int // log rows on the logs screen, 0 for all

	// Statistics
	RecentCount int

	// Refresh settings
	StatusTTL       time.Duration
	RefreshInterval time.Duration
}

// Validate fills defaults and rejects impossible values
func (c *Config) Validate() error {
	if c.Timezone == "" {
		c.Timezone = constants.DefaultTimezone
	}
	if c.RecentCount == 0 {
		c.RecentCount = constants.DefaultRecentCount
	}
	if c.StatusTTL == 0 {
		c.StatusTTL = constants.StatusMessageTTL
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = time.Second
	}

	if c.RecentCount < 0 {
		return fmt.Errorf("recent count must not be negative, got %d", c.RecentCount)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("max rows must not be negative, got %d", c.MaxRows)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", c.RefreshInterval)
	}
	return nil
}
