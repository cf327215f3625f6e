package roundtimer

// Status represents the lifecycle phase of a timer
type Status string

const (
	StatusIdle     Status = "IDLE"
	StatusRunning  Status = "RUNNING"
	StatusFinished Status = "FINISHED"
)

// Config holds the interval settings for a timer
type Config struct {
	RoundDurationSec int `json:"round_duration_sec" yaml:"round_duration_sec"`
	RoundCount       int `json:"round_count" yaml:"round_count"`
}

// Validate checks that all config values are usable
func (c Config) Validate() error {
	if c.RoundDurationSec <= 0 {
		return ErrInvalidRoundDuration
	}
	if c.RoundCount <= 0 {
		return ErrInvalidRoundCount
	}
	return nil
}

// State is a snapshot of timer progress
type State struct {
	SecondsRemaining int  `json:"seconds_remaining"`
	CurrentRound     int  `json:"current_round"`
	Running          bool `json:"running"`
	Finished         bool `json:"finished"`
}

// Status derives the lifecycle phase from the state flags
func (s State) Status() Status {
	switch {
	case s.Finished:
		return StatusFinished
	case s.Running:
		return StatusRunning
	default:
		return StatusIdle
	}
}

// Signals receives the timer's outbound notifications. Implementations are
// invoked synchronously from Tick after the state transition has been
// applied, so they observe the post-transition state.
type Signals interface {
	// RoundComplete fires when a round other than the last finishes.
	// completedRound is the 1-based index of the round that just ended.
	RoundComplete(completedRound int, state State)

	// AllRoundsComplete fires once when the final round's countdown reaches zero.
	AllRoundsComplete(state State)
}
