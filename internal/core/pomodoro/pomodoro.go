package pomodoro

import (
	"sync"
	"time"

	"tomatick/internal/core/model"
)

// Options contains runtime options for Timer.
type Options struct {
	TickInterval time.Duration
}

// Timer is the Pomodoro state machine: it alternates work and break
// sessions, counting the active one down once per second while running.
type Timer struct {
	mu        sync.Mutex
	config    model.TimerConfig
	options   Options
	session   Session
	status    Status
	remaining time.Duration
	events    []chan Event
	stopCh    chan struct{}
	looping   bool
}

// New creates an idle Timer showing the full work duration.
func New(config model.TimerConfig, options Options) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	config = config.Normalize()

	return &Timer{
		config:    config,
		options:   options,
		session:   SessionWork,
		status:    StatusIdle,
		remaining: config.WorkDuration,
		stopCh:    make(chan struct{}),
	}
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Run launches the ticking loop. Ticks only mutate state while the
// status is running, so the loop itself may outlive pauses and resets.
func (timer *Timer) Run() {
	timer.mu.Lock()
	if timer.looping {
		timer.mu.Unlock()
		return
	}
	timer.looping = true
	timer.mu.Unlock()

	go timer.loop()
}

// Shutdown terminates the ticking loop and closes observer channels.
// No event is delivered after Shutdown returns.
func (timer *Timer) Shutdown() {
	timer.mu.Lock()
	if !timer.looping {
		timer.mu.Unlock()
		return
	}
	close(timer.stopCh)
	timer.looping = false
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Toggle starts the countdown from idle or paused, and pauses it while
// running. The remaining time is never touched, so resuming continues
// from the frozen value.
func (timer *Timer) Toggle() {
	timer.mu.Lock()
	if timer.status == StatusRunning {
		timer.status = StatusPaused
	} else {
		timer.status = StatusRunning
	}
	timer.emitStateChangeLocked(time.Now())
	timer.mu.Unlock()
}

// Reset returns the timer to an idle work session from any state.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.session = SessionWork
	timer.status = StatusIdle
	timer.remaining = timer.config.WorkDuration
	timer.emitStateChangeLocked(time.Now())
	timer.mu.Unlock()
}

// Adjust changes the configured duration of the given session type,
// clamping at the one-minute minimum. There is no upper bound. If the
// adjusted session is the active one the countdown jumps to the new
// duration immediately, even mid-count.
func (timer *Timer) Adjust(session Session, delta time.Duration) {
	timer.mu.Lock()
	var target *time.Duration
	switch session {
	case SessionWork:
		target = &timer.config.WorkDuration
	case SessionBreak:
		target = &timer.config.BreakDuration
	default:
		timer.mu.Unlock()
		return
	}

	adjusted := *target + delta
	if adjusted < model.MinSessionLength {
		adjusted = model.MinSessionLength
	}
	*target = adjusted
	if timer.session == session {
		timer.remaining = adjusted
	}
	timer.emitStateChangeLocked(time.Now())
	timer.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshotLocked()
}

func (timer *Timer) loop() {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timer.stopCh:
			return
		case tickTime := <-ticker.C:
			timer.tick(tickTime)
		}
	}
}

func (timer *Timer) tick(tickTime time.Time) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.status != StatusRunning {
		return
	}

	timer.remaining -= time.Second
	if timer.remaining <= 0 {
		// Reaching zero switches the session in the same tick, so a
		// negative remaining time is never observable. The status
		// stays running: the next session begins automatically.
		timer.switchSessionLocked()
		timer.emitStateChangeLocked(tickTime)
		return
	}

	timer.emitLocked(Event{
		Type:     EventTick,
		Snapshot: timer.snapshotLocked(),
		At:       tickTime,
	})
}

func (timer *Timer) switchSessionLocked() {
	if timer.session == SessionWork {
		timer.session = SessionBreak
		timer.remaining = timer.config.BreakDuration
	} else {
		timer.session = SessionWork
		timer.remaining = timer.config.WorkDuration
	}
}

func (timer *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		Session:       timer.session,
		Status:        timer.status,
		Remaining:     timer.remaining,
		WorkDuration:  timer.config.WorkDuration,
		BreakDuration: timer.config.BreakDuration,
	}
}

func (timer *Timer) emitStateChangeLocked(at time.Time) {
	timer.emitLocked(Event{
		Type:     EventStateChange,
		Snapshot: timer.snapshotLocked(),
		At:       at,
	})
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
