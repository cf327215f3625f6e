package roundtimer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderSignals captures boundary signals for assertions
type recorderSignals struct {
	roundsCompleted []int
	roundStates     []State
	finishCount     int
	finishState     State
}

func (r *recorderSignals) RoundComplete(completedRound int, state State) {
	r.roundsCompleted = append(r.roundsCompleted, completedRound)
	r.roundStates = append(r.roundStates, state)
}

func (r *recorderSignals) AllRoundsComplete(state State) {
	r.finishCount++
	r.finishState = state
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{RoundDurationSec: 60, RoundCount: 8}, nil},
		{"zero duration", Config{RoundDurationSec: 0, RoundCount: 8}, ErrInvalidRoundDuration},
		{"negative duration", Config{RoundDurationSec: -5, RoundCount: 8}, ErrInvalidRoundDuration},
		{"zero rounds", Config{RoundDurationSec: 60, RoundCount: 0}, ErrInvalidRoundCount},
		{"negative rounds", Config{RoundDurationSec: 60, RoundCount: -1}, ErrInvalidRoundCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, err := New(tt.cfg, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, timer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, State{
				SecondsRemaining: tt.cfg.RoundDurationSec,
				CurrentRound:     1,
			}, timer.State())
		})
	}
}

func TestWorkedExample(t *testing.T) {
	// Two rounds of three seconds each.
	rec := &recorderSignals{}
	timer, err := New(Config{RoundDurationSec: 3, RoundCount: 2}, rec)
	require.NoError(t, err)

	require.NoError(t, timer.Start())
	assert.Equal(t, StatusRunning, timer.State().Status())

	timer.Tick()
	timer.Tick()
	assert.Equal(t, 1, timer.State().SecondsRemaining)
	assert.Empty(t, rec.roundsCompleted)

	// Third tick crosses the round boundary.
	timer.Tick()
	st := timer.State()
	assert.Equal(t, 2, st.CurrentRound)
	assert.Equal(t, 3, st.SecondsRemaining)
	assert.True(t, st.Running)
	require.Equal(t, []int{1}, rec.roundsCompleted)

	// Signal observers see the post-transition state.
	assert.Equal(t, 2, rec.roundStates[0].CurrentRound)
	assert.Equal(t, 3, rec.roundStates[0].SecondsRemaining)

	timer.Tick()
	timer.Tick()
	timer.Tick()
	st = timer.State()
	assert.Equal(t, 0, st.SecondsRemaining)
	assert.Equal(t, 2, st.CurrentRound)
	assert.False(t, st.Running)
	assert.True(t, st.Finished)
	assert.Equal(t, StatusFinished, st.Status())
	assert.Equal(t, 1, rec.finishCount)
	assert.Equal(t, []int{1}, rec.roundsCompleted)
}

func TestFullSequenceReachesFinished(t *testing.T) {
	tests := []struct {
		durationSec int
		rounds      int
	}{
		{1, 1},
		{1, 5},
		{3, 2},
		{45, 4},
	}

	for _, tt := range tests {
		rec := &recorderSignals{}
		timer, err := New(Config{RoundDurationSec: tt.durationSec, RoundCount: tt.rounds}, rec)
		require.NoError(t, err)
		require.NoError(t, timer.Start())

		for i := 0; i < tt.durationSec*tt.rounds; i++ {
			timer.Tick()
		}

		st := timer.State()
		assert.True(t, st.Finished, "D=%d R=%d", tt.durationSec, tt.rounds)
		assert.False(t, st.Running)
		assert.Equal(t, 0, st.SecondsRemaining)
		assert.Equal(t, tt.rounds, st.CurrentRound)
		assert.Equal(t, 1, rec.finishCount)
		assert.Len(t, rec.roundsCompleted, tt.rounds-1)
	}
}

func TestTickIsNoOpWhenNotRunning(t *testing.T) {
	timer, err := New(Config{RoundDurationSec: 10, RoundCount: 2}, nil)
	require.NoError(t, err)

	// Idle: nothing moves.
	before := timer.State()
	timer.Tick()
	assert.Equal(t, before, timer.State())

	// Finished: nothing moves either.
	require.NoError(t, timer.Start())
	for i := 0; i < 20; i++ {
		timer.Tick()
	}
	require.True(t, timer.State().Finished)
	before = timer.State()
	timer.Tick()
	timer.Tick()
	assert.Equal(t, before, timer.State())
}

func TestPausePreservesPosition(t *testing.T) {
	timer, err := New(Config{RoundDurationSec: 5, RoundCount: 3}, nil)
	require.NoError(t, err)

	require.NoError(t, timer.Start())
	timer.Tick()
	timer.Tick()

	timer.Pause()
	st := timer.State()
	assert.False(t, st.Running)
	assert.Equal(t, 3, st.SecondsRemaining)
	assert.Equal(t, 1, st.CurrentRound)

	// Resuming picks up exactly where pause left off.
	require.NoError(t, timer.Start())
	st = timer.State()
	assert.True(t, st.Running)
	assert.Equal(t, 3, st.SecondsRemaining)
	assert.Equal(t, 1, st.CurrentRound)
}

func TestResetFromAnyState(t *testing.T) {
	cfg := Config{RoundDurationSec: 4, RoundCount: 2}
	initial := State{SecondsRemaining: 4, CurrentRound: 1}

	t.Run("from running", func(t *testing.T) {
		timer, err := New(cfg, nil)
		require.NoError(t, err)
		require.NoError(t, timer.Start())
		timer.Tick()
		timer.Reset()
		assert.Equal(t, initial, timer.State())
	})

	t.Run("from paused", func(t *testing.T) {
		timer, err := New(cfg, nil)
		require.NoError(t, err)
		require.NoError(t, timer.Start())
		timer.Tick()
		timer.Pause()
		timer.Reset()
		assert.Equal(t, initial, timer.State())
	})

	t.Run("from finished", func(t *testing.T) {
		timer, err := New(cfg, nil)
		require.NoError(t, err)
		require.NoError(t, timer.Start())
		for i := 0; i < 8; i++ {
			timer.Tick()
		}
		require.True(t, timer.State().Finished)
		timer.Reset()
		assert.Equal(t, initial, timer.State())
	})
}

func TestStartRejectedWhenFinished(t *testing.T) {
	timer, err := New(Config{RoundDurationSec: 1, RoundCount: 1}, nil)
	require.NoError(t, err)

	require.NoError(t, timer.Start())
	timer.Tick()
	require.True(t, timer.State().Finished)

	assert.ErrorIs(t, timer.Start(), ErrTimerFinished)

	// Reset re-arms the timer.
	timer.Reset()
	assert.NoError(t, timer.Start())
}

func TestSetConfig(t *testing.T) {
	timer, err := New(Config{RoundDurationSec: 30, RoundCount: 3}, nil)
	require.NoError(t, err)

	t.Run("rejected while running", func(t *testing.T) {
		require.NoError(t, timer.Start())
		err := timer.SetConfig(Config{RoundDurationSec: 10, RoundCount: 2})
		assert.ErrorIs(t, err, ErrTimerRunning)
		assert.Equal(t, 30, timer.Config().RoundDurationSec)
		timer.Pause()
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		assert.ErrorIs(t, timer.SetConfig(Config{RoundDurationSec: 0, RoundCount: 2}), ErrInvalidRoundDuration)
		assert.ErrorIs(t, timer.SetConfig(Config{RoundDurationSec: 10, RoundCount: 0}), ErrInvalidRoundCount)
	})

	t.Run("applies immediately while idle", func(t *testing.T) {
		require.NoError(t, timer.SetConfig(Config{RoundDurationSec: 10, RoundCount: 2}))
		st := timer.State()
		assert.Equal(t, 10, st.SecondsRemaining)
		assert.Equal(t, 1, st.CurrentRound)
		assert.Equal(t, Config{RoundDurationSec: 10, RoundCount: 2}, timer.Config())
	})
}

func TestStatusDerivation(t *testing.T) {
	assert.Equal(t, StatusIdle, State{}.Status())
	assert.Equal(t, StatusRunning, State{Running: true}.Status())
	assert.Equal(t, StatusFinished, State{Finished: true}.Status())
}
