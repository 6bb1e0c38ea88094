package constants

import "time"

const (
	// DefaultTimezone is the timezone in which calendar days are compared
	DefaultTimezone = "Local"

	// DefaultRecentCount is how many of today's entries the daily summary lists
	DefaultRecentCount = 5

	// StatusMessageTTL is how long a "logged!" confirmation stays on screen
	StatusMessageTTL = 2 * time.Second
)
