// Package feedback provides the cue sinks fired at round boundaries: the
// stand-ins for the audible/haptic feedback of a training timer.
package feedback

import (
	"io"

	"github.com/rs/zerolog/log"

	"github.com/fitkit/roundclock/internal/roundtimer"
)

// LogSignals announces round boundaries through the structured log
type LogSignals struct{}

// NewLogSignals creates a log-based signal sink
func NewLogSignals() *LogSignals {
	return &LogSignals{}
}

func (s *LogSignals) RoundComplete(completedRound int, state roundtimer.State) {
	log.Info().
		Int("completed_round", completedRound).
		Int("next_round", state.CurrentRound).
		Msg("round complete - get ready for the next one")
}

func (s *LogSignals) AllRoundsComplete(state roundtimer.State) {
	log.Info().
		Int("rounds", state.CurrentRound).
		Msg("all rounds complete - workout done")
}

// BellSignals rings the terminal bell at round boundaries. One bell per
// round boundary, three for the finish.
type BellSignals struct {
	w io.Writer
}

// NewBellSignals creates a bell sink writing to w (usually os.Stdout)
func NewBellSignals(w io.Writer) *BellSignals {
	return &BellSignals{w: w}
}

func (s *BellSignals) RoundComplete(completedRound int, state roundtimer.State) {
	s.ring(1)
}

func (s *BellSignals) AllRoundsComplete(state roundtimer.State) {
	s.ring(3)
}

func (s *BellSignals) ring(n int) {
	for i := 0; i < n; i++ {
		if _, err := s.w.Write([]byte("\a")); err != nil {
			log.Warn().Err(err).Msg("failed to ring terminal bell")
			return
		}
	}
}

// multiSignals fans signals out to several sinks in order
type multiSignals struct {
	sinks []roundtimer.Signals
}

// Multi combines signal sinks into one
func Multi(sinks ...roundtimer.Signals) roundtimer.Signals {
	return &multiSignals{sinks: sinks}
}

func (m *multiSignals) RoundComplete(completedRound int, state roundtimer.State) {
	for _, s := range m.sinks {
		s.RoundComplete(completedRound, state)
	}
}

func (m *multiSignals) AllRoundsComplete(state roundtimer.State) {
	for _, s := range m.sinks {
		s.AllRoundsComplete(state)
	}
}
