package playback

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/playaxis/internal/domain/item"
	"github.com/osa030/playaxis/internal/domain/settings"
	"github.com/osa030/playaxis/internal/host"
)

// DefaultStepSize is the step size of a new scheduler.
const DefaultStepSize = 1

// Config holds scheduler collaborators.
type Config struct {
	Clock     Clock
	Selection host.SelectionManager
	Caption   CaptionReporter
	Controls  Controls // Optional
}

// task is one deferred callback of a Play invocation.
type task struct {
	delay time.Duration
	timer Timer
	run   func()
}

// Scheduler drives the play axis over an item sequence.
//
// All transitions and tick callbacks are serialized by mu. Every Play
// invocation owns a generation; leaving Playing bumps the generation and
// stops the generation's timers, so a tick of a superseded invocation never
// takes effect even if its timer already fired.
type Scheduler struct {
	mu sync.Mutex

	// Loaded data
	items     item.Sequence
	interval  time.Duration
	loop      bool
	idleLabel string

	// Playback state
	state    State
	cursor   int
	stepSize int

	// Schedule of the current Play invocation
	generation uint64
	tasks      []*task
	nextTask   int

	// Collaborators
	clock     Clock
	selection host.SelectionManager
	caption   CaptionReporter
	controls  Controls

	// Events
	eventCh chan Event
	closed  bool

	// Context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a stopped scheduler with no items.
func NewScheduler(config Config) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		state:     StateStopped,
		stepSize:  DefaultStepSize,
		interval:  settings.Default().Transition.Interval(),
		clock:     config.Clock,
		selection: config.Selection,
		caption:   config.Caption,
		controls:  config.Controls,
		eventCh:   make(chan Event, 64),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Events returns the event channel. Events are dropped when it is full.
func (s *Scheduler) Events() <-chan Event {
	return s.eventCh
}

// Load replaces the item sequence and transition settings.
// idleLabel is the caption reported when playback stops.
// A running playback is stopped first.
func (s *Scheduler) Load(items item.Sequence, transition settings.TransitionSettings, idleLabel string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	s.items = items
	s.interval = transition.Interval()
	s.loop = transition.Loop
	s.idleLabel = idleLabel

	zlog.Debug().Msgf("playback: loaded items=%d interval=%v loop=%t", items.Len(), s.interval, s.loop)
}

// Play starts or resumes playback. It does nothing if already playing.
// Without items only the terminal tick is scheduled, at once; a looping
// scheduler with no items does not start.
func (s *Scheduler) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playLocked()
}

// Pause suspends playback and keeps the cursor.
// It does nothing unless playing.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pauseLocked()
}

// Stop cancels playback, rewinds the cursor, reports the idle caption and
// clears the host selection. It does nothing if already stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
}

// Step moves the cursor by delta while paused and selects the item there.
// It is ignored when not paused or when the target is out of range.
func (s *Scheduler) Step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePaused {
		zlog.Debug().Msgf("playback: step rejected: state=%s", s.state)
		return
	}

	target := s.cursor + delta
	if !s.items.InRange(target) {
		zlog.Debug().Msgf("playback: step rejected: cursor=%d delta=%d items=%d", s.cursor, delta, s.items.Len())
		return
	}

	it := s.visitLocked(target)

	if s.controls != nil {
		s.controls.Stepped(s.cursor, s.items.Len())
	}

	s.sendEventLocked(Event{
		Type:   EventStepped,
		State:  s.state,
		Cursor: s.cursor,
		Item:   it,
	})
}

// SetStepSize sets the number of items advanced per step. While playing,
// the schedule is rebuilt from the current cursor with the new size.
// Non-positive sizes are ignored.
func (s *Scheduler) SetStepSize(units int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if units <= 0 {
		zlog.Debug().Msgf("playback: step size rejected: units=%d", units)
		return
	}

	s.stepSize = units

	if s.state == StatePlaying {
		s.pauseLocked()
		s.playLocked()
	}
}

// GetState returns the current playback state.
func (s *Scheduler) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// GetCursor returns the index of the last selected item.
func (s *Scheduler) GetCursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// GetStepSize returns the current step size.
func (s *Scheduler) GetStepSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepSize
}

// GetItems returns the loaded sequence.
func (s *Scheduler) GetItems() item.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Close cancels all pending ticks and closes the event channel.
// The scheduler must not be used afterwards.
func (s *Scheduler) Close() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelScheduleLocked()
	if !s.closed {
		s.closed = true
		close(s.eventCh)
	}
}

// playLocked schedules one tick per visited index plus the terminal tick.
// Delays are relative to the cursor at call time.
// Must be called with lock held.
func (s *Scheduler) playLocked() {
	if s.state == StatePlaying {
		return
	}

	length := s.items.Len()
	if length == 0 && s.loop {
		zlog.Debug().Msg("playback: play ignored: nothing to loop over")
		return
	}

	start := 0
	if s.state == StatePaused {
		start = s.cursor + s.stepSize
	}

	s.cancelScheduleLocked()
	gen := s.generation
	base := s.cursor

	for i := start; i < length; i += s.stepSize {
		index := i
		s.scheduleLocked(gen, s.delay(index-base), func() {
			it := s.visitLocked(index)
			s.sendEventLocked(Event{
				Type:   EventItemSelected,
				State:  s.state,
				Cursor: s.cursor,
				Item:   it,
			})
		})
	}
	s.scheduleLocked(gen, s.delay(length-base), s.finishCycleLocked)

	s.state = StatePlaying

	zlog.Debug().Msgf("playback: playing: start=%d cursor=%d step=%d ticks=%d",
		start, base, s.stepSize, len(s.tasks)-1)

	s.stateChangedLocked()
}

// pauseLocked must be called with lock held.
func (s *Scheduler) pauseLocked() {
	if s.state == StatePaused || s.state == StateStopped {
		return
	}

	s.cancelScheduleLocked()
	s.state = StatePaused

	zlog.Debug().Msgf("playback: paused: cursor=%d", s.cursor)

	s.stateChangedLocked()
}

// stopLocked must be called with lock held.
func (s *Scheduler) stopLocked() {
	if s.state == StateStopped {
		return
	}

	s.cancelScheduleLocked()
	s.cursor = 0
	if s.caption != nil {
		s.caption.Report(s.idleLabel)
	}
	if s.selection != nil {
		s.selection.Clear()
	}
	s.state = StateStopped

	zlog.Debug().Msg("playback: stopped")

	s.stateChangedLocked()
}

// finishCycleLocked is the terminal tick: replay from the start when
// looping, otherwise stop.
func (s *Scheduler) finishCycleLocked() {
	s.sendEventLocked(Event{
		Type:   EventCycleCompleted,
		State:  s.state,
		Cursor: s.cursor,
	})

	if s.loop {
		s.cursor = 0
		s.state = StateStopped
		s.playLocked()
		return
	}
	s.stopLocked()
}

// visitLocked selects the item at index and reports its caption.
func (s *Scheduler) visitLocked(index int) *item.Item {
	it, ok := s.items.At(index)
	if !ok {
		return nil
	}

	if s.selection != nil {
		s.selection.Select(it.Token)
	}
	s.cursor = index
	if s.caption != nil {
		s.caption.Report(it.Label)
	}

	zlog.Debug().Msgf("playback: selected index=%d label=%s", index, it.Label)
	return &it
}

// delay converts an index distance into time: one interval per step.
func (s *Scheduler) delay(distance int) time.Duration {
	return time.Duration(distance) * s.interval / time.Duration(s.stepSize)
}

// scheduleLocked registers a deferred task of generation gen.
// When a task's timer fires, every earlier task of the same generation that
// has not run yet runs first, so tasks always take effect in schedule order.
func (s *Scheduler) scheduleLocked(gen uint64, delay time.Duration, run func()) {
	t := &task{delay: delay, run: run}
	position := len(s.tasks)
	s.tasks = append(s.tasks, t)

	t.timer = s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for s.generation == gen && s.nextTask <= position {
			next := s.tasks[s.nextTask]
			s.nextTask++
			next.run()
		}
	})
}

// cancelScheduleLocked stops every pending timer and invalidates the
// current generation.
func (s *Scheduler) cancelScheduleLocked() {
	for _, t := range s.tasks {
		if t.timer != nil {
			t.timer.Stop()
		}
	}
	s.tasks = nil
	s.nextTask = 0
	s.generation++
}

func (s *Scheduler) stateChangedLocked() {
	if s.controls != nil {
		s.controls.StateChanged(s.state)
	}
	s.sendEventLocked(Event{
		Type:   EventStateChanged,
		State:  s.state,
		Cursor: s.cursor,
	})
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (s *Scheduler) sendEventLocked(e Event) {
	if s.closed {
		return
	}
	select {
	case s.eventCh <- e:
	case <-s.ctx.Done():
	default:
		// Channel full, drop event
	}
}
