package timekeeper

import (
	"time"

	"pomodoro/internal/core/model"
)

// Queue holds the phases of one cycle. The head is the active phase.
type Queue struct {
	phases []*Phase
	size   int
}

// BuildQueue expands a cycle configuration into Repeat work/short-break
// pairs followed by one long break.
func BuildQueue(config model.CycleConfig) (*Queue, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	phases := make([]*Phase, 0, config.PhaseCount())
	for i := 0; i < config.Repeat; i++ {
		phases = append(phases,
			NewPhase(KindWork, config.Work),
			NewPhase(KindShortBreak, config.ShortBreak),
		)
	}
	phases = append(phases, NewPhase(KindLongBreak, config.LongBreak))

	return &Queue{phases: phases, size: len(phases)}, nil
}

// Active returns the head phase, or nil once the queue is drained.
func (queue *Queue) Active() *Phase {
	if queue == nil || len(queue.phases) == 0 {
		return nil
	}
	return queue.phases[0]
}

// Advance discards the head and starts the next phase. It returns false
// when no phases are left.
func (queue *Queue) Advance(now time.Time) (*Phase, bool) {
	if queue.IsEmpty() {
		return nil, false
	}
	queue.phases[0] = nil
	queue.phases = queue.phases[1:]
	next := queue.Active()
	if next == nil {
		return nil, false
	}
	next.Start(now)
	return next, true
}

// Clear drops every pending phase, including the active one.
func (queue *Queue) Clear() {
	if queue == nil {
		return
	}
	for i := range queue.phases {
		queue.phases[i] = nil
	}
	queue.phases = nil
}

// IsEmpty reports whether no phases remain.
func (queue *Queue) IsEmpty() bool {
	return queue == nil || len(queue.phases) == 0
}

// Len returns the number of phases still queued, the active one included.
func (queue *Queue) Len() int {
	if queue == nil {
		return 0
	}
	return len(queue.phases)
}

// Size returns the number of phases the queue was built with.
func (queue *Queue) Size() int {
	if queue == nil {
		return 0
	}
	return queue.size
}

// Position returns the 1-based index of the active phase, 0 when drained.
func (queue *Queue) Position() int {
	if queue.IsEmpty() {
		return 0
	}
	return queue.size - len(queue.phases) + 1
}

// Durations lists the total duration of every queued phase in order.
func (queue *Queue) Durations() []time.Duration {
	if queue == nil {
		return nil
	}
	durations := make([]time.Duration, 0, len(queue.phases))
	for _, phase := range queue.phases {
		durations = append(durations, phase.Total())
	}
	return durations
}

// Kinds lists the kind of every queued phase in order.
func (queue *Queue) Kinds() []Kind {
	if queue == nil {
		return nil
	}
	kinds := make([]Kind, 0, len(queue.phases))
	for _, phase := range queue.phases {
		kinds = append(kinds, phase.Kind())
	}
	return kinds
}
