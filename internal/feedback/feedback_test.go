package feedback

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fitkit/roundclock/internal/roundtimer"
)

type countingSignals struct {
	rounds   int
	finishes int
}

func (c *countingSignals) RoundComplete(completedRound int, state roundtimer.State) { c.rounds++ }
func (c *countingSignals) AllRoundsComplete(state roundtimer.State)                 { c.finishes++ }

func TestBellSignals(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBellSignals(&buf)

	bell.RoundComplete(1, roundtimer.State{CurrentRound: 2, SecondsRemaining: 30, Running: true})
	assert.Equal(t, "\a", buf.String())

	buf.Reset()
	bell.AllRoundsComplete(roundtimer.State{CurrentRound: 3, Finished: true})
	assert.Equal(t, "\a\a\a", buf.String())
}

func TestMultiFansOut(t *testing.T) {
	a := &countingSignals{}
	b := &countingSignals{}
	multi := Multi(a, b)

	multi.RoundComplete(1, roundtimer.State{})
	multi.RoundComplete(2, roundtimer.State{})
	multi.AllRoundsComplete(roundtimer.State{})

	assert.Equal(t, 2, a.rounds)
	assert.Equal(t, 2, b.rounds)
	assert.Equal(t, 1, a.finishes)
	assert.Equal(t, 1, b.finishes)
}
