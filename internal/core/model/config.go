package model

import "time"

// MinSessionLength is the shortest configurable session duration.
const MinSessionLength = time.Minute

// TimerConfig contains the configured session lengths for the timer.
type TimerConfig struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// DefaultConfig returns the classic Pomodoro durations.
func DefaultConfig() TimerConfig {
	return TimerConfig{
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
	}
}

// Normalize clamps both durations to at least MinSessionLength and
// truncates them to whole minutes.
func (config TimerConfig) Normalize() TimerConfig {
	config.WorkDuration = normalizeDuration(config.WorkDuration)
	config.BreakDuration = normalizeDuration(config.BreakDuration)
	return config
}

func normalizeDuration(duration time.Duration) time.Duration {
	duration = duration.Truncate(time.Minute)
	if duration < MinSessionLength {
		return MinSessionLength
	}
	return duration
}
