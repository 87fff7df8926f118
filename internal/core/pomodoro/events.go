package pomodoro

import "time"

// Session identifies which interval type is active.
type Session string

const (
	SessionWork  Session = "work"
	SessionBreak Session = "break"
)

// Status represents whether the countdown is advancing.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// EventType defines the type of Timer event.
type EventType string

const (
	// EventStateChange is emitted when the status, the session or a
	// configured duration changes.
	EventStateChange EventType = "state_change"
	// EventTick is emitted once per second while running.
	EventTick EventType = "tick"
)

// Snapshot is a copy of the timer state at a single point in time.
type Snapshot struct {
	Session       Session
	Status        Status
	Remaining     time.Duration
	WorkDuration  time.Duration
	BreakDuration time.Duration
}

// Event represents a Timer update for observers. Every event carries a
// full snapshot so observers never read the Timer back.
type Event struct {
	Type EventType
	Snapshot
	At time.Time
}
