package roundtimer

// Timer is the round/countdown state machine. It counts one round of
// RoundDurationSec down to zero, RoundCount times, and signals each
// boundary. It holds no clock of its own: the owner delivers one Tick per
// elapsed second while the timer is running. Methods are not safe for
// concurrent use; Runner serializes access in front of it.
type Timer struct {
	cfg              Config
	secondsRemaining int
	currentRound     int
	running          bool
	finished         bool
	signals          Signals
}

// New creates an idle timer positioned at the start of round 1.
// signals may be nil when no observer is interested.
func New(cfg Config, signals Signals) (*Timer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Timer{
		cfg:              cfg,
		secondsRemaining: cfg.RoundDurationSec,
		currentRound:     1,
		signals:          signals,
	}, nil
}

// Start moves an idle timer to running. Starting an already running timer is
// a no-op; starting a finished timer is rejected until Reset.
func (t *Timer) Start() error {
	if t.finished {
		return ErrTimerFinished
	}
	t.running = true
	return nil
}

// Pause stops the countdown in place, preserving the current round and the
// seconds remaining. No-op unless running.
func (t *Timer) Pause() {
	t.running = false
}

// Reset returns the timer to the start of round 1, idle, from any state.
func (t *Timer) Reset() {
	t.running = false
	t.finished = false
	t.currentRound = 1
	t.secondsRemaining = t.cfg.RoundDurationSec
}

// Tick advances the countdown by one second. Round-boundary and finish
// handling happen inside the same call so a boundary can never be skipped.
// No-op unless running.
func (t *Timer) Tick() {
	if !t.running {
		return
	}

	t.secondsRemaining--
	if t.secondsRemaining > 0 {
		return
	}

	if t.currentRound < t.cfg.RoundCount {
		completed := t.currentRound
		t.currentRound++
		t.secondsRemaining = t.cfg.RoundDurationSec
		if t.signals != nil {
			t.signals.RoundComplete(completed, t.State())
		}
		return
	}

	// Last round ran out: terminal state.
	t.secondsRemaining = 0
	t.running = false
	t.finished = true
	if t.signals != nil {
		t.signals.AllRoundsComplete(t.State())
	}
}

// SetConfig replaces the interval settings. Rejected while running; while
// idle the countdown position resets to the new duration immediately.
func (t *Timer) SetConfig(cfg Config) error {
	if t.running {
		return ErrTimerRunning
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	t.cfg = cfg
	t.finished = false
	t.currentRound = 1
	t.secondsRemaining = cfg.RoundDurationSec
	return nil
}

// State returns a snapshot of the current progress
func (t *Timer) State() State {
	return State{
		SecondsRemaining: t.secondsRemaining,
		CurrentRound:     t.currentRound,
		Running:          t.running,
		Finished:         t.finished,
	}
}

// Config returns the active interval settings
func (t *Timer) Config() Config {
	return t.cfg
}
