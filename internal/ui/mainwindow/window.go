package mainwindow

import (
	"fmt"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines the session commands wired to the buttons.
type Callbacks struct {
	OnStart func(preferences.Settings)
	OnPause func()
	OnStop  func()
}

// Window is the main application window: current pomodoro, timer options
// and the start/pause/stop buttons.
type Window struct {
	window      fyne.Window
	appName     string
	form        *preferences.Form
	callbacks   Callbacks
	timeLabel   *widget.Label
	statusLabel *widget.Label
	phaseLabel  *widget.Label
	progress    *widget.ProgressBar
	startButton *widget.Button
	pauseButton *widget.Button
	stopButton  *widget.Button
}

// New creates the main window filled from settings.
func New(app fyne.App, appName string, settings preferences.Settings, callbacks Callbacks) *Window {
	mainWindow := &Window{
		window:      app.NewWindow(appName),
		appName:     appName,
		form:        preferences.NewForm(settings),
		callbacks:   callbacks,
		timeLabel:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true, Bold: true}),
		statusLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		phaseLabel:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		progress:    widget.NewProgressBar(),
	}
	mainWindow.progress.TextFormatter = func() string { return "" }

	mainWindow.startButton = widget.NewButton("Start", mainWindow.handleStart)
	mainWindow.pauseButton = widget.NewButton("Pause", func() {
		if mainWindow.callbacks.OnPause != nil {
			mainWindow.callbacks.OnPause()
		}
	})
	mainWindow.stopButton = widget.NewButton("Stop", func() {
		if mainWindow.callbacks.OnStop != nil {
			mainWindow.callbacks.OnStop()
		}
	})

	status := widget.NewCard("Current pomodoro", "", container.NewVBox(
		container.NewGridWithColumns(2, mainWindow.timeLabel, mainWindow.statusLabel),
		mainWindow.phaseLabel,
		mainWindow.progress,
	))
	buttons := container.NewHBox(layout.NewSpacer(), mainWindow.startButton, mainWindow.pauseButton, mainWindow.stopButton)

	mainWindow.window.SetContent(container.NewVBox(status, mainWindow.form.Content(), buttons))
	mainWindow.window.Resize(fyne.NewSize(380, 0))
	mainWindow.Render(timekeeper.Snapshot{Status: timekeeper.StatusStopped})
	return mainWindow
}

// Window returns the underlying fyne window.
func (mainWindow *Window) Window() fyne.Window {
	return mainWindow.window
}

// Form returns the timer options panel.
func (mainWindow *Window) Form() *preferences.Form {
	return mainWindow.form
}

// Show displays and focuses the window.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// Render redraws status, title and button states. Must run on the UI goroutine.
func (mainWindow *Window) Render(snapshot timekeeper.Snapshot) {
	mainWindow.timeLabel.SetText(timekeeper.FormatClock(snapshot.Remaining))
	mainWindow.statusLabel.SetText(string(snapshot.Status))
	if snapshot.Active() {
		mainWindow.phaseLabel.SetText(fmt.Sprintf("%s (%d of %d)", snapshot.Kind.Name(), snapshot.Position, snapshot.Size))
	} else {
		mainWindow.phaseLabel.SetText("")
	}
	mainWindow.progress.SetValue(snapshot.Progress)
	mainWindow.window.SetTitle(timekeeper.Title(mainWindow.appName, snapshot))

	controls := timekeeper.Controls(snapshot.Status)
	setEnabled(mainWindow.startButton, controls.Start)
	setEnabled(mainWindow.pauseButton, controls.Pause)
	setEnabled(mainWindow.stopButton, controls.Stop)
	if snapshot.Status == timekeeper.StatusPaused {
		mainWindow.startButton.SetText("Resume")
	} else {
		mainWindow.startButton.SetText("Start")
	}
}

// ShowError reports an error in a dialog on top of the window.
func (mainWindow *Window) ShowError(err error) {
	dialog.ShowError(err, mainWindow.window)
}

func (mainWindow *Window) handleStart() {
	settings, err := mainWindow.form.Settings()
	if err != nil {
		mainWindow.ShowError(err)
		return
	}
	if mainWindow.callbacks.OnStart != nil {
		mainWindow.callbacks.OnStart(settings)
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
