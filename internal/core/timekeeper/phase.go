package timekeeper

import "time"

// Phase is a single countdown interval advanced by wall-clock ticks.
type Phase struct {
	kind      Kind
	total     time.Duration
	remaining time.Duration
	status    Status
	startedAt time.Time
	lastTick  time.Time
	endsAt    time.Time
	elapsed   time.Duration
}

// NewPhase returns a stopped phase of the given length.
func NewPhase(kind Kind, total time.Duration) *Phase {
	return &Phase{
		kind:   kind,
		total:  total,
		status: StatusStopped,
	}
}

// Start begins the countdown from the full duration. Starting a paused
// phase resumes it; starting a running or finished phase does nothing.
func (phase *Phase) Start(now time.Time) {
	switch phase.status {
	case StatusPaused:
		phase.Resume(now)
	case StatusStopped:
		phase.status = StatusRunning
		phase.remaining = phase.total
		phase.elapsed = 0
		phase.startedAt = now
		phase.lastTick = now
		phase.endsAt = now.Add(phase.total)
		if phase.remaining <= 0 {
			phase.finish()
		}
	}
}

// Tick charges the wall-clock time since the previous tick. It returns the
// status after the tick.
func (phase *Phase) Tick(now time.Time) Status {
	if phase.status != StatusRunning {
		return phase.status
	}
	phase.charge(now)
	return phase.status
}

// Pause freezes the countdown. Time since the last tick is charged first
// so that pausing between ticks loses nothing.
func (phase *Phase) Pause(now time.Time) {
	if phase.status != StatusRunning {
		return
	}
	phase.charge(now)
	if phase.status == StatusRunning {
		phase.status = StatusPaused
	}
}

// Resume restarts a paused countdown without charging the paused interval.
func (phase *Phase) Resume(now time.Time) {
	if phase.status != StatusPaused {
		return
	}
	phase.status = StatusRunning
	phase.lastTick = now
	phase.endsAt = now.Add(phase.remaining)
}

// Stop abandons the countdown. Remaining drops to zero.
func (phase *Phase) Stop() {
	phase.status = StatusStopped
	phase.remaining = 0
	phase.endsAt = time.Time{}
}

func (phase *Phase) charge(now time.Time) {
	delta := now.Sub(phase.lastTick)
	if delta < 0 {
		delta = 0
	}
	phase.lastTick = now
	if delta > phase.remaining {
		delta = phase.remaining
	}
	phase.remaining -= delta
	phase.elapsed += delta
	if phase.remaining <= 0 {
		phase.finish()
	}
}

func (phase *Phase) finish() {
	phase.remaining = 0
	phase.status = StatusFinished
}

// Kind returns the phase kind.
func (phase *Phase) Kind() Kind { return phase.kind }

// Total returns the configured duration.
func (phase *Phase) Total() time.Duration { return phase.total }

// Remaining returns the time left, never negative.
func (phase *Phase) Remaining() time.Duration { return phase.remaining }

// Status returns the current status.
func (phase *Phase) Status() Status { return phase.status }

// StartedAt returns when the phase was first started.
func (phase *Phase) StartedAt() time.Time { return phase.startedAt }

// EndsAt returns the projected end time while running.
func (phase *Phase) EndsAt() time.Time { return phase.endsAt }

// Elapsed returns the countdown time actually consumed, excluding pauses.
func (phase *Phase) Elapsed() time.Duration { return phase.elapsed }

// Progress returns the consumed fraction in [0, 1].
func (phase *Phase) Progress() float64 {
	if phase.total <= 0 {
		return 1
	}
	progress := float64(phase.elapsed) / float64(phase.total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
