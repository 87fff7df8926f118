package pomodoro

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as a zero-padded MM:SS clock.
// Durations of 100 minutes or more simply grow the minute field.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
