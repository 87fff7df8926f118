package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"tomatick/internal/core/pomodoro"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnAdjustBreak func(delta time.Duration)
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem("Show timer", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	reset := fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	breakLength := fyne.NewMenuItem("Break length", nil)
	breakLength.ChildMenu = fyne.NewMenu("", fyne.NewMenuItem("+1 minute", func() {
		if manager.callbacks.OnAdjustBreak != nil {
			manager.callbacks.OnAdjustBreak(time.Minute)
		}
	}), fyne.NewMenuItem("-1 minute", func() {
		if manager.callbacks.OnAdjustBreak != nil {
			manager.callbacks.OnAdjustBreak(-time.Minute)
		}
	}))

	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.menu = fyne.NewMenu("Tomatick", manager.statusItem, show, manager.toggleItem, reset, breakLength, quit)
	app.SetSystemTrayMenu(manager.menu)

	return manager
}

// Apply refreshes the tray entries from a state snapshot. Must be
// called on the Fyne event thread.
func (manager *Manager) Apply(snapshot pomodoro.Snapshot) {
	manager.statusItem.Label = fmt.Sprintf("%s (%s)%s",
		pomodoro.FormatClock(snapshot.Remaining), snapshot.Session, statusSuffix(snapshot.Status))

	switch snapshot.Status {
	case pomodoro.StatusRunning:
		manager.toggleItem.Label = "Pause"
	case pomodoro.StatusPaused:
		manager.toggleItem.Label = "Resume"
	default:
		manager.toggleItem.Label = "Start"
	}

	manager.app.SetSystemTrayMenu(manager.menu)
}

func statusSuffix(status pomodoro.Status) string {
	if status == pomodoro.StatusPaused {
		return " (paused)"
	}
	return ""
}
