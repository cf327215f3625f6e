package roundtimer

import "errors"

var (
	// ErrInvalidRoundDuration is returned when a config carries a non-positive round duration
	ErrInvalidRoundDuration = errors.New("round duration must be positive")

	// ErrInvalidRoundCount is returned when a config carries a non-positive round count
	ErrInvalidRoundCount = errors.New("round count must be positive")

	// ErrTimerRunning is returned when the config is changed while the timer is running
	ErrTimerRunning = errors.New("timer is running")

	// ErrTimerFinished is returned when a finished timer is started without a reset
	ErrTimerFinished = errors.New("timer is finished")
)
