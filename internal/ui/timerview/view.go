package timerview

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"tomatick/internal/core/pomodoro"
)

var (
	workColor  = color.NRGBA{R: 214, G: 72, B: 54, A: 255}
	breakColor = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
)

// Callbacks defines the timer actions the view can dispatch. The view
// never mutates timer state itself.
type Callbacks struct {
	OnToggle     func()
	OnReset      func()
	OnAdjustWork func(delta time.Duration)
}

// View renders the timer inside the main window.
type View struct {
	window       fyne.Window
	sessionLabel *canvas.Text
	clockLabel   *canvas.Text
	workLabel    *widget.Label
	toggleButton *widget.Button
	callbacks    Callbacks
}

// New builds the timer view and installs it as the window content.
func New(window fyne.Window, initial pomodoro.Snapshot, callbacks Callbacks) *View {
	sessionLabel := canvas.NewText(sessionTitle(initial.Session), workColor)
	sessionLabel.TextStyle = fyne.TextStyle{Bold: true}
	sessionLabel.TextSize = 18
	sessionLabel.Alignment = fyne.TextAlignCenter

	clockLabel := canvas.NewText(pomodoro.FormatClock(initial.Remaining), theme.ForegroundColor())
	clockLabel.TextStyle = fyne.TextStyle{Bold: true}
	clockLabel.TextSize = 48
	clockLabel.Alignment = fyne.TextAlignCenter

	workLabel := widget.NewLabel(workLengthText(initial.WorkDuration))
	workLabel.Alignment = fyne.TextAlignCenter

	view := &View{
		window:       window,
		sessionLabel: sessionLabel,
		clockLabel:   clockLabel,
		workLabel:    workLabel,
		callbacks:    callbacks,
	}

	decreaseButton := widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		if view.callbacks.OnAdjustWork != nil {
			view.callbacks.OnAdjustWork(-time.Minute)
		}
	})
	increaseButton := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		if view.callbacks.OnAdjustWork != nil {
			view.callbacks.OnAdjustWork(time.Minute)
		}
	})

	view.toggleButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.toggleButton.Importance = widget.HighImportance

	resetButton := widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})

	aboutButton := widget.NewButtonWithIcon("What is this?", theme.InfoIcon(), view.showAbout)

	workRow := container.NewHBox(
		layout.NewSpacer(),
		decreaseButton,
		workLabel,
		increaseButton,
		layout.NewSpacer(),
	)
	controls := container.NewHBox(
		layout.NewSpacer(),
		view.toggleButton,
		resetButton,
		layout.NewSpacer(),
	)

	content := container.NewVBox(
		container.NewPadded(sessionLabel),
		container.NewPadded(clockLabel),
		workRow,
		controls,
		container.NewCenter(aboutButton),
	)

	window.SetContent(container.NewPadded(content))
	view.Apply(initial)

	return view
}

// Apply re-renders the view from a state snapshot. Must be called on
// the Fyne event thread.
func (view *View) Apply(snapshot pomodoro.Snapshot) {
	view.sessionLabel.Text = sessionTitle(snapshot.Session)
	if snapshot.Session == pomodoro.SessionBreak {
		view.sessionLabel.Color = breakColor
	} else {
		view.sessionLabel.Color = workColor
	}
	view.sessionLabel.Refresh()

	view.clockLabel.Text = pomodoro.FormatClock(snapshot.Remaining)
	view.clockLabel.Refresh()

	view.workLabel.SetText(workLengthText(snapshot.WorkDuration))

	if snapshot.Status == pomodoro.StatusRunning {
		view.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
}

func sessionTitle(session pomodoro.Session) string {
	if session == pomodoro.SessionBreak {
		return "Break"
	}
	return "Work"
}

func workLengthText(duration time.Duration) string {
	return fmt.Sprintf("Work session: %d min", int(duration.Minutes()))
}
