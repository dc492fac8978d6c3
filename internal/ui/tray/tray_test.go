package tray

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/timekeeper"
)

func TestStatusLine(t *testing.T) {
	running := timekeeper.Snapshot{
		Status:    timekeeper.StatusRunning,
		Kind:      timekeeper.KindWork,
		Remaining: 24*time.Minute + 59*time.Second,
		Position:  1,
		Size:      9,
	}
	assert.Equal(t, "Work 1/9, 00:24:59 left", StatusLine(running))

	paused := running
	paused.Status = timekeeper.StatusPaused
	paused.Kind = timekeeper.KindLongBreak
	paused.Position = 9
	assert.Equal(t, "Long break 9/9, 00:24:59 left (paused)", StatusLine(paused))

	assert.Equal(t, "Finished", StatusLine(timekeeper.Snapshot{Status: timekeeper.StatusFinished}))
}

func TestRenderTogglesItems(t *testing.T) {
	var started, quit int
	manager := New(nil, "Pomodoro", Icons{}, Callbacks{
		OnStart: func() { started++ },
		OnQuit:  func() { quit++ },
	})

	assert.False(t, manager.startItem.Disabled)
	assert.True(t, manager.pauseItem.Disabled)
	assert.True(t, manager.stopItem.Disabled)
	assert.True(t, manager.skipItem.Disabled)
	assert.Equal(t, "Status: Stopped", manager.statusItem.Label)

	manager.Render(timekeeper.Snapshot{Status: timekeeper.StatusRunning, Kind: timekeeper.KindWork, Position: 1, Size: 3})
	assert.True(t, manager.startItem.Disabled)
	assert.False(t, manager.pauseItem.Disabled)
	assert.False(t, manager.stopItem.Disabled)
	assert.False(t, manager.skipItem.Disabled)

	manager.Render(timekeeper.Snapshot{Status: timekeeper.StatusPaused, Kind: timekeeper.KindWork, Position: 1, Size: 3})
	assert.False(t, manager.startItem.Disabled)
	assert.Equal(t, "Resume", manager.startItem.Label)
	assert.True(t, manager.pauseItem.Disabled)

	manager.startItem.Action()
	manager.quitItem.Action()
	manager.pauseItem.Action()
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, quit)
}
