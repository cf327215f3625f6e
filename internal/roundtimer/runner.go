package roundtimer

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/fitkit/roundclock/internal/events"
)

// tickInterval is the nominal countdown cadence. One delivered tick equals
// one elapsed second of the countdown regardless of scheduling jitter.
const tickInterval = time.Second

// Clock is the interface we use for time operations.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// Emitter receives timer events for fan-out to observers (the gateway
// broadcasts them to connected clients). Emit must not block.
type Emitter interface {
	Emit(eventType events.Type, payload any)
}

// Runner drives a Timer at 1 Hz. It owns the scheduling handle the state
// machine itself does not: Start spawns a ticker loop, Pause/Reset stop it
// so no stale tick can land after the timer leaves the running state.
// All operations are safe for concurrent use.
type Runner struct {
	mu      sync.Mutex
	timer   *Timer
	clock   Clock
	emitter Emitter
	stop    chan struct{}
}

// NewRunner creates a runner around a fresh timer. signals and emitter may
// be nil.
func NewRunner(cfg Config, signals Signals, emitter Emitter, clock Clock) (*Runner, error) {
	r := &Runner{
		clock:   clock,
		emitter: emitter,
	}
	timer, err := New(cfg, &runnerSignals{runner: r, next: signals})
	if err != nil {
		return nil, err
	}
	r.timer = timer
	return r, nil
}

// Start begins tick generation. Starting while already running is a no-op;
// starting a finished timer returns ErrTimerFinished.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer.State().Running {
		return nil
	}
	if err := r.timer.Start(); err != nil {
		return err
	}

	r.startLoopLocked()

	st := r.timer.State()
	cfg := r.timer.Config()
	log.Info().
		Int("round", st.CurrentRound).
		Int("seconds_remaining", st.SecondsRemaining).
		Int("round_count", cfg.RoundCount).
		Msg("timer started")

	r.emit(events.TypeTimerStarted, events.TimerStartedPayload{
		RoundDurationSec: cfg.RoundDurationSec,
		RoundCount:       cfg.RoundCount,
		CurrentRound:     st.CurrentRound,
		SecondsRemaining: st.SecondsRemaining,
		StartedAt:        r.clock.Now(),
	})
	return nil
}

// Pause stops tick generation and freezes the countdown in place. No-op
// unless running.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.timer.State().Running {
		return
	}
	r.timer.Pause()
	r.stopLoopLocked()

	st := r.timer.State()
	log.Info().
		Int("round", st.CurrentRound).
		Int("seconds_remaining", st.SecondsRemaining).
		Msg("timer paused")

	r.emit(events.TypeTimerPaused, events.TimerPausedPayload{
		CurrentRound:     st.CurrentRound,
		SecondsRemaining: st.SecondsRemaining,
		PausedAt:         r.clock.Now(),
	})
}

// Reset stops tick generation and returns the timer to the start of round 1.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timer.Reset()
	r.stopLoopLocked()

	cfg := r.timer.Config()
	log.Info().
		Int("round_duration_sec", cfg.RoundDurationSec).
		Int("round_count", cfg.RoundCount).
		Msg("timer reset")

	r.emit(events.TypeTimerReset, events.TimerResetPayload{
		RoundDurationSec: cfg.RoundDurationSec,
		RoundCount:       cfg.RoundCount,
		ResetAt:          r.clock.Now(),
	})
}

// SetConfig replaces the interval settings. Rejected while running.
func (r *Runner) SetConfig(cfg Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.timer.SetConfig(cfg); err != nil {
		return err
	}

	st := r.timer.State()
	log.Info().
		Int("round_duration_sec", cfg.RoundDurationSec).
		Int("round_count", cfg.RoundCount).
		Msg("timer config updated")

	r.emit(events.TypeConfigUpdated, events.ConfigUpdatedPayload{
		RoundDurationSec: cfg.RoundDurationSec,
		RoundCount:       cfg.RoundCount,
		SecondsRemaining: st.SecondsRemaining,
		UpdatedAt:        r.clock.Now(),
	})
	return nil
}

// State returns a snapshot of the timer's progress
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer.State()
}

// Config returns the active interval settings
func (r *Runner) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer.Config()
}

// Shutdown releases the scheduling handle on teardown, pausing a running
// countdown in place.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timer.Pause()
	r.stopLoopLocked()
	log.Info().Msg("timer runner shut down")
}

// startLoopLocked spawns the ticker goroutine. Caller must hold r.mu.
func (r *Runner) startLoopLocked() {
	stop := make(chan struct{})
	r.stop = stop
	ticker := r.clock.NewTicker(tickInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				if !r.handleTick() {
					return
				}
			}
		}
	}()
}

// stopLoopLocked releases the current scheduling handle, if any. Caller
// must hold r.mu.
func (r *Runner) stopLoopLocked() {
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
}

// handleTick applies one tick under the lock. Returns false when the loop
// should exit: either the timer left the running state between the ticker
// firing and the lock being acquired, or this tick finished the sequence.
func (r *Runner) handleTick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.timer.State().Running {
		// Stale tick after Pause/Reset won.
		return false
	}

	r.timer.Tick()

	st := r.timer.State()
	if st.Finished {
		r.stopLoopLocked()
		return false
	}

	cfg := r.timer.Config()
	log.Debug().
		Int("round", st.CurrentRound).
		Int("seconds_remaining", st.SecondsRemaining).
		Msg("tick")

	r.emit(events.TypeTimerTick, events.TimerTickPayload{
		CurrentRound:     st.CurrentRound,
		RoundCount:       cfg.RoundCount,
		SecondsRemaining: st.SecondsRemaining,
		TickedAt:         r.clock.Now(),
	})
	return true
}

func (r *Runner) emit(eventType events.Type, payload any) {
	if r.emitter == nil {
		return
	}
	r.emitter.Emit(eventType, payload)
}

// runnerSignals forwards the timer's boundary signals to the configured
// sink and mirrors them as events. Invoked from Tick while r.mu is held.
type runnerSignals struct {
	runner *Runner
	next   Signals
}

func (s *runnerSignals) RoundComplete(completedRound int, state State) {
	if s.next != nil {
		s.next.RoundComplete(completedRound, state)
	}

	r := s.runner
	cfg := r.timer.Config()
	log.Info().
		Int("completed_round", completedRound).
		Int("next_round", state.CurrentRound).
		Int("round_count", cfg.RoundCount).
		Msg("round complete")

	r.emit(events.TypeRoundCompleted, events.RoundCompletedPayload{
		CompletedRound:   completedRound,
		NextRound:        state.CurrentRound,
		RoundCount:       cfg.RoundCount,
		SecondsRemaining: state.SecondsRemaining,
		CompletedAt:      r.clock.Now(),
	})
}

func (s *runnerSignals) AllRoundsComplete(state State) {
	if s.next != nil {
		s.next.AllRoundsComplete(state)
	}

	r := s.runner
	cfg := r.timer.Config()
	log.Info().
		Int("round_count", cfg.RoundCount).
		Msg("all rounds complete")

	r.emit(events.TypeTimerFinished, events.TimerFinishedPayload{
		RoundCount: cfg.RoundCount,
		FinishedAt: r.clock.Now(),
	})
}
