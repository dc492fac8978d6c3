package notify

import (
	"fmt"
	"log"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
)

// ForEvent maps a TimeKeeper event to a desktop notification. Phase
// boundaries are announced at normal urgency, user commands at low urgency.
func ForEvent(event timekeeper.Event) (platform.Notification, bool) {
	switch event.Type {
	case timekeeper.EventPhaseChange:
		notification := platform.Notification{
			Title:   event.Message,
			Urgency: platform.UrgencyNormal,
		}
		if event.Snapshot.Active() {
			notification.Body = fmt.Sprintf("%s, phase %d of %d",
				timekeeper.FormatClock(event.Snapshot.Total), event.Snapshot.Position, event.Snapshot.Size)
		} else {
			notification.Body = "All pomodoros done"
		}
		return notification, true
	case timekeeper.EventAction:
		return platform.Notification{
			Title:   event.Message,
			Urgency: platform.UrgencyLow,
		}, true
	default:
		return platform.Notification{}, false
	}
}

// Dispatch shows a notification for every relevant event until the channel
// closes. Failures are logged; the timer never hears about them.
func Dispatch(events <-chan timekeeper.Event, notifier platform.Notifier) {
	for event := range events {
		notification, ok := ForEvent(event)
		if !ok {
			continue
		}
		if err := notifier.Notify(notification); err != nil {
			log.Printf("notify: %v", err)
		}
	}
}
