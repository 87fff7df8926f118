package timerview

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const techniqueURL = "https://en.wikipedia.org/wiki/Pomodoro_Technique"

func (view *View) showAbout() {
	explanation := widget.NewLabel("The Pomodoro Technique breaks work into focused " +
		"sessions separated by short breaks. Start the timer, work until the break " +
		"begins, then step away until the next work session starts.")
	explanation.Wrapping = fyne.TextWrapWord

	body := container.NewVBox(explanation)
	if link, err := url.Parse(techniqueURL); err == nil {
		body.Add(widget.NewHyperlink("Learn more about the technique", link))
	}

	dialog.ShowCustom("About the Pomodoro Technique", "Close", body, view.window)
}
