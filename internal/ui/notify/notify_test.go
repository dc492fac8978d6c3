package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
)

type recordingNotifier struct {
	shown []platform.Notification
	err   error
}

func (notifier *recordingNotifier) Notify(notification platform.Notification) error {
	notifier.shown = append(notifier.shown, notification)
	return notifier.err
}

func (notifier *recordingNotifier) Close() error { return nil }

func TestForEvent(t *testing.T) {
	notification, ok := ForEvent(timekeeper.Event{
		Type:    timekeeper.EventPhaseChange,
		Message: "Short break",
		Snapshot: timekeeper.Snapshot{
			Status:   timekeeper.StatusRunning,
			Kind:     timekeeper.KindShortBreak,
			Total:    5 * time.Minute,
			Position: 2,
			Size:     9,
		},
	})
	require.True(t, ok)
	assert.Equal(t, "Short break", notification.Title)
	assert.Equal(t, "00:05:00, phase 2 of 9", notification.Body)
	assert.Equal(t, platform.UrgencyNormal, notification.Urgency)

	notification, ok = ForEvent(timekeeper.Event{
		Type:     timekeeper.EventPhaseChange,
		Message:  timekeeper.CycleCompleteName,
		Snapshot: timekeeper.Snapshot{Status: timekeeper.StatusFinished},
	})
	require.True(t, ok)
	assert.Equal(t, "All pomodoros done", notification.Body)

	notification, ok = ForEvent(timekeeper.Event{Type: timekeeper.EventAction, Message: timekeeper.ActionPaused})
	require.True(t, ok)
	assert.Equal(t, "Paused", notification.Title)
	assert.Equal(t, platform.UrgencyLow, notification.Urgency)

	_, ok = ForEvent(timekeeper.Event{Type: timekeeper.EventRender})
	assert.False(t, ok)
}

func TestDispatchSurvivesNotifierErrors(t *testing.T) {
	now := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	keeper := timekeeper.New(model.NewCycleConfig(10, 5, 1, 20), timekeeper.Config{
		Clock: func() time.Time { return now },
	})
	events := keeper.Subscribe(64)

	require.NoError(t, keeper.Start())
	keeper.Tick(now.Add(10 * time.Second))
	keeper.Pause()
	keeper.Close()

	notifier := &recordingNotifier{err: errors.New("bus gone")}
	Dispatch(events, notifier)

	var titles []string
	for _, shown := range notifier.shown {
		titles = append(titles, shown.Title)
	}
	assert.Equal(t, []string{"Started", "Work", "Short break", "Paused"}, titles)
	assert.Equal(t, timekeeper.StatusPaused, keeper.Snapshot().Status)
}
