package timekeeper

import (
	"context"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	// Clock overrides time.Now for commands. Ticks carry their own time.
	Clock func() time.Time
}

// TimeKeeper is the session controller: it owns the phase queue of the
// current session and turns user commands and ticks into state changes.
// All methods are safe for concurrent use; a single mutex serializes the
// ticker loop against UI commands.
type TimeKeeper struct {
	mu         sync.Mutex
	config     model.CycleConfig
	options    Config
	queue      *Queue
	idleStatus Status
	events     []chan Event
	closed     bool
}

// New creates a TimeKeeper with the provided cycle configuration. The
// configuration is validated on Start, not here.
func New(config model.CycleConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}

	return &TimeKeeper{
		config:     config,
		options:    options,
		idleStatus: StatusStopped,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// Close closes all observer channels. Commands keep working afterwards
// but nobody is told about them.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Configure replaces the configuration used by the next fresh Start.
// A live session keeps the queue it was built with.
func (keeper *TimeKeeper) Configure(config model.CycleConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	keeper.mu.Lock()
	keeper.config = config
	keeper.mu.Unlock()
	return nil
}

// CycleConfig returns the current configuration.
func (keeper *TimeKeeper) CycleConfig() model.CycleConfig {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config
}

// Start begins a new session, or resumes a paused one.
func (keeper *TimeKeeper) Start() error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	now := keeper.options.Clock()
	if phase := keeper.queue.Active(); phase != nil {
		if phase.Status() != StatusPaused {
			return nil
		}
		phase.Resume(now)
		keeper.emitLocked(Event{Type: EventAction, Message: ActionResumed, At: now})
		keeper.emitRenderLocked(now)
		return nil
	}

	queue, err := BuildQueue(keeper.config)
	if err != nil {
		return err
	}
	keeper.queue = queue
	head := queue.Active()
	head.Start(now)

	keeper.emitLocked(Event{Type: EventAction, Message: ActionStarted, At: now})
	keeper.emitLocked(Event{
		Type:     EventPhaseChange,
		Message:  head.Kind().Name(),
		Snapshot: keeper.snapshotLocked(),
		At:       now,
	})
	keeper.emitRenderLocked(now)
	return nil
}

// Pause freezes the active phase. It is a no-op without a running session.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	phase := keeper.queue.Active()
	if phase == nil || phase.Status() != StatusRunning {
		return
	}
	now := keeper.options.Clock()
	// Settle time since the last tick; it may cross a phase boundary.
	keeper.tickLocked(now)
	phase = keeper.queue.Active()
	if phase == nil {
		// The cycle ran out before the pause landed.
		keeper.emitRenderLocked(now)
		return
	}
	phase.Pause(now)
	keeper.emitLocked(Event{Type: EventAction, Message: ActionPaused, At: now})
	keeper.emitRenderLocked(now)
}

// Stop ends the session and discards every queued phase.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	phase := keeper.queue.Active()
	if phase == nil {
		return
	}
	now := keeper.options.Clock()
	keeper.emitRecordLocked(phase, now, settleLocked(phase, now))
	phase.Stop()
	keeper.queue.Clear()
	keeper.queue = nil
	keeper.idleStatus = StatusStopped

	keeper.emitLocked(Event{Type: EventAction, Message: ActionStopped, At: now})
	keeper.emitRenderLocked(now)
}

// Skip ends the active phase early and moves on to the next one.
func (keeper *TimeKeeper) Skip() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	phase := keeper.queue.Active()
	if phase == nil {
		return
	}
	now := keeper.options.Clock()
	keeper.emitRecordLocked(phase, now, settleLocked(phase, now))
	keeper.advanceLocked(now)
	keeper.emitRenderLocked(now)
}

// Tick advances the active phase to now. The host calls it periodically;
// the exact cadence does not matter because elapsed wall-clock time is
// charged, not a fixed step.
func (keeper *TimeKeeper) Tick(now time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if !keeper.tickLocked(now) {
		return
	}
	keeper.emitRenderLocked(now)
}

// Snapshot returns the current session state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Run ticks the TimeKeeper until ctx is cancelled.
func (keeper *TimeKeeper) Run(ctx context.Context) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tickTime := <-ticker.C:
			keeper.Tick(tickTime)
		}
	}
}

// tickLocked charges time to the running phase and handles phase
// boundaries. It reports whether a phase was running.
func (keeper *TimeKeeper) tickLocked(now time.Time) bool {
	phase := keeper.queue.Active()
	if phase == nil || phase.Status() != StatusRunning {
		return false
	}
	if phase.Tick(now) == StatusFinished {
		keeper.emitRecordLocked(phase, now, true)
		keeper.advanceLocked(now)
	}
	return true
}

// settleLocked charges a running phase up to now and reports whether it
// ran out on the way.
func settleLocked(phase *Phase, now time.Time) bool {
	if phase.Status() == StatusRunning {
		phase.Tick(now)
	}
	return phase.Status() == StatusFinished
}

func (keeper *TimeKeeper) advanceLocked(now time.Time) {
	next, ok := keeper.queue.Advance(now)
	if !ok {
		keeper.queue = nil
		keeper.idleStatus = StatusFinished
		keeper.emitLocked(Event{
			Type:     EventPhaseChange,
			Message:  CycleCompleteName,
			Snapshot: keeper.snapshotLocked(),
			At:       now,
		})
		return
	}
	keeper.emitLocked(Event{
		Type:     EventPhaseChange,
		Message:  next.Kind().Name(),
		Snapshot: keeper.snapshotLocked(),
		At:       now,
	})
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	phase := keeper.queue.Active()
	if phase == nil {
		return Snapshot{Status: keeper.idleStatus}
	}
	return Snapshot{
		Status:    phase.Status(),
		Kind:      phase.Kind(),
		Remaining: phase.Remaining(),
		Total:     phase.Total(),
		Progress:  phase.Progress(),
		Position:  keeper.queue.Position(),
		Size:      keeper.queue.Size(),
	}
}

func (keeper *TimeKeeper) emitRecordLocked(phase *Phase, now time.Time, completed bool) {
	keeper.emitLocked(Event{
		Type: EventPhaseEnded,
		Record: &PhaseRecord{
			Kind:      phase.Kind(),
			Planned:   phase.Total(),
			Elapsed:   phase.Elapsed(),
			StartedAt: phase.StartedAt(),
			EndedAt:   now,
			Completed: completed,
		},
		At: now,
	})
}

func (keeper *TimeKeeper) emitRenderLocked(now time.Time) {
	keeper.emitLocked(Event{
		Type:     EventRender,
		Snapshot: keeper.snapshotLocked(),
		At:       now,
	})
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
