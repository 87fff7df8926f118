package main

import (
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"tomatick/internal/core/pomodoro"
	"tomatick/internal/platform"
	"tomatick/internal/storage"
	"tomatick/internal/ui/timerview"
	"tomatick/internal/ui/tray"
)

const appName = "Tomatick"

var (
	workMinutes  int
	breakMinutes int
	noTray       bool
)

var rootCmd = &cobra.Command{
	Use:          "tomatick",
	Short:        "A Pomodoro timer for the desktop",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&workMinutes, "work", 0, "work session length in minutes (overrides the config file)")
	rootCmd.Flags().IntVar(&breakMinutes, "break", 0, "break session length in minutes (overrides the config file)")
	rootCmd.Flags().BoolVar(&noTray, "no-tray", false, "do not add a system tray entry")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	if workMinutes > 0 {
		settings.Timer.WorkDuration = time.Duration(workMinutes) * time.Minute
	}
	if breakMinutes > 0 {
		settings.Timer.BreakDuration = time.Duration(breakMinutes) * time.Minute
	}
	if noTray {
		settings.ShowTray = false
	}

	fyneApp := app.NewWithID("com.tomatick.app")
	window := fyneApp.NewWindow(appName)

	timer := pomodoro.New(settings.Timer, pomodoro.Options{TickInterval: time.Second})

	view := timerview.New(window, timer.Snapshot(), timerview.Callbacks{
		OnToggle: timer.Toggle,
		OnReset:  timer.Reset,
		OnAdjustWork: func(delta time.Duration) {
			timer.Adjust(pomodoro.SessionWork, delta)
		},
	})

	var trayManager *tray.Manager
	if settings.ShowTray {
		if desktopApp, ok := fyneApp.(desktop.App); ok {
			trayManager = tray.New(desktopApp, tray.Callbacks{
				OnShow: func() {
					window.Show()
					window.RequestFocus()
				},
				OnToggle: timer.Toggle,
				OnReset:  timer.Reset,
				OnAdjustBreak: func(delta time.Duration) {
					timer.Adjust(pomodoro.SessionBreak, delta)
				},
				OnQuit: func() {
					timer.Shutdown()
					fyneApp.Quit()
				},
			})
			trayManager.Apply(timer.Snapshot())
			window.SetCloseIntercept(window.Hide)
		} else {
			log.Printf("system tray unsupported on this platform")
		}
	}

	events := timer.Subscribe(5)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				view.Apply(snapshot)
				if trayManager != nil {
					trayManager.Apply(snapshot)
				}
			})
		}
	}()

	timer.Run()
	window.Resize(fyne.NewSize(320, 280))
	window.Show()
	fyneApp.Run()
	timer.Shutdown()
	return nil
}
