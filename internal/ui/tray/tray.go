package tray

import (
	"fmt"

	"pomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnPause func()
	OnStop  func()
	OnSkip  func()
	OnQuit  func()
}

// Icons are swapped by session status.
type Icons struct {
	Idle    fyne.Resource
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	appName    string
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	showItem   *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
	skipItem   *fyne.MenuItem
	quitItem   *fyne.MenuItem
	status     timekeeper.Status
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, appName string, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		appName:   appName,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: stopped", nil)
	manager.statusItem.Disabled = true
	manager.showItem = fyne.NewMenuItem("Show window", invoke(&manager.callbacks.OnShow))
	manager.startItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnPause))
	manager.stopItem = fyne.NewMenuItem("Stop", invoke(&manager.callbacks.OnStop))
	manager.skipItem = fyne.NewMenuItem("Skip phase", invoke(&manager.callbacks.OnSkip))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.Render(timekeeper.Snapshot{Status: timekeeper.StatusStopped})
	return manager
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

// Render updates the status line, item states and icon from a snapshot.
func (manager *Manager) Render(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = "Status: " + StatusLine(snapshot)

	controls := timekeeper.Controls(snapshot.Status)
	manager.startItem.Disabled = !controls.Start
	if snapshot.Status == timekeeper.StatusPaused {
		manager.startItem.Label = "Resume"
	} else {
		manager.startItem.Label = "Start"
	}
	manager.pauseItem.Disabled = !controls.Pause
	manager.stopItem.Disabled = !controls.Stop
	manager.skipItem.Disabled = !snapshot.Active()

	if manager.status != snapshot.Status {
		manager.status = snapshot.Status
		manager.refreshIcon()
	}
	manager.refreshMenu()
}

// StatusLine summarizes a snapshot for the tray, e.g. "Work 1/9, 00:24:59 left".
func StatusLine(snapshot timekeeper.Snapshot) string {
	if !snapshot.Active() {
		return string(snapshot.Status)
	}
	line := fmt.Sprintf("%s %d/%d, %s left",
		snapshot.Kind.Name(), snapshot.Position, snapshot.Size, timekeeper.FormatClock(snapshot.Remaining))
	if snapshot.Status == timekeeper.StatusPaused {
		line += " (paused)"
	}
	return line
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Idle
	switch manager.status {
	case timekeeper.StatusRunning:
		icon = manager.icons.Running
	case timekeeper.StatusPaused:
		icon = manager.icons.Paused
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(manager.appName,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.showItem,
		manager.startItem,
		manager.pauseItem,
		manager.stopItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		manager.quitItem,
	))
}
