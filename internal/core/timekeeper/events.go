package timekeeper

import "time"

// Status represents the state of a single phase countdown.
type Status string

const (
	StatusStopped  Status = "Stopped"
	StatusRunning  Status = "Running"
	StatusPaused   Status = "Paused"
	StatusFinished Status = "Finished"
)

// Kind identifies what a phase is for.
type Kind string

const (
	KindWork       Kind = "work"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
)

// Name returns the human readable phase name used in notifications.
func (kind Kind) Name() string {
	switch kind {
	case KindWork:
		return "Work"
	case KindShortBreak:
		return "Short break"
	case KindLongBreak:
		return "Long break"
	default:
		return ""
	}
}

// CycleCompleteName is announced when the final long break finishes.
const CycleCompleteName = "Cycle complete"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	// EventRender follows every state change; observers redraw from it.
	EventRender EventType = "render"
	// EventPhaseChange marks a phase boundary. Message holds the new phase name.
	EventPhaseChange EventType = "phase_change"
	// EventAction reports a user command that changed state.
	EventAction EventType = "action"
	// EventPhaseEnded carries the record of a phase that finished or was stopped.
	EventPhaseEnded EventType = "phase_ended"
)

// Action names carried by EventAction.
const (
	ActionStarted = "Started"
	ActionPaused  = "Paused"
	ActionResumed = "Resumed"
	ActionStopped = "Stopped"
)

// Snapshot is the observable state of a session.
type Snapshot struct {
	Status    Status
	Kind      Kind
	Remaining time.Duration
	Total     time.Duration
	Progress  float64
	// Position is the 1-based index of the active phase within the cycle.
	Position int
	Size     int
}

// Active reports whether a session is running or paused.
func (snapshot Snapshot) Active() bool {
	return snapshot.Status == StatusRunning || snapshot.Status == StatusPaused
}

// PhaseRecord describes a phase that left the queue.
type PhaseRecord struct {
	Kind      Kind
	Planned   time.Duration
	Elapsed   time.Duration
	StartedAt time.Time
	EndedAt   time.Time
	Completed bool
}

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Message  string
	Record   *PhaseRecord
	At       time.Time
}
