package timekeeper

import (
	"fmt"
	"strings"
	"time"
)

// FormatClock renders a duration as HH:MM:SS. Negative values render as zero
// and hours are not wrapped at 24.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int64(value / time.Second)
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Title builds the window title, e.g. "Pomodoro: running 00:24:10 left".
func Title(appName string, snapshot Snapshot) string {
	status := strings.ToLower(string(snapshot.Status))
	if snapshot.Active() {
		return fmt.Sprintf("%s: %s %s left", appName, status, FormatClock(snapshot.Remaining))
	}
	return fmt.Sprintf("%s: %s", appName, status)
}

// ControlState says which session commands make sense for a status.
type ControlState struct {
	Start bool
	Pause bool
	Stop  bool
}

// Controls returns the enabled commands for a status.
func Controls(status Status) ControlState {
	switch status {
	case StatusRunning:
		return ControlState{Start: false, Pause: true, Stop: true}
	case StatusPaused:
		return ControlState{Start: true, Pause: false, Stop: true}
	default:
		return ControlState{Start: true, Pause: false, Stop: false}
	}
}
