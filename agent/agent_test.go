package agent

import (
	"path/filepath"
	"testing"

	"fib2048/board"

	"github.com/stretchr/testify/require"
)

func rowBoard(values [4]board.Cell) board.Board {
	var b board.Board
	for c, v := range values {
		b.Set(0, c, v)
	}
	return b
}

func TestTakeActionReturnsNullWhenNoLegalMove(t *testing.T) {
	a := New(WithInit("zero"))

	var full board.Board
	pattern := [4][4]board.Cell{
		{1, 3, 1, 3},
		{3, 1, 3, 1},
		{1, 3, 1, 3},
		{3, 1, 3, 1},
	}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			full.Set(r, c, pattern[r][c])
		}
	}

	a.OpenEpisode("test")
	action := a.TakeAction(full)
	require.True(t, action.Null)
	require.Empty(t, a.trajectory)
}

func TestTakeActionAppendsOnlyWhenLegal(t *testing.T) {
	a := New(WithInit("zero"))
	b := rowBoard([4]board.Cell{1, 1, 0, 0})

	a.OpenEpisode("test")
	action := a.TakeAction(b)
	require.False(t, action.Null)
	require.Len(t, a.trajectory, 1)
	require.Equal(t, 2, a.trajectory[0].Reward)
}

func TestOpenEpisodeClearsTrajectory(t *testing.T) {
	a := New(WithInit("zero"))
	b := rowBoard([4]board.Cell{1, 1, 0, 0})

	a.OpenEpisode("1")
	a.TakeAction(b)
	require.NotEmpty(t, a.trajectory)

	a.OpenEpisode("2")
	require.Empty(t, a.trajectory)
}

func TestCloseEpisodeNoopWhenAlphaZero(t *testing.T) {
	a := New(WithInit("zero"))
	b := rowBoard([4]board.Cell{1, 1, 0, 0})

	a.OpenEpisode("1")
	a.TakeAction(b)
	a.CloseEpisode("1")

	require.Equal(t, float32(0), a.net.Value(a.trajectory[len(a.trajectory)-1].After))
}

func TestCloseEpisodeAnchorsTerminalValueToZero(t *testing.T) {
	a := New(WithInit("zero"), WithAlpha(1.0))
	b := rowBoard([4]board.Cell{1, 1, 0, 0})

	a.OpenEpisode("1")
	a.TakeAction(b)
	after := a.trajectory[0].After

	a.CloseEpisode("1")
	require.InDelta(t, float32(0), a.net.Value(after), 1e-3)
}

// TestCloseEpisodeBackwardTargetTwoStepTrajectory follows the two-step
// convergence scenario: the terminal anchor leaves s1 at 0, so s0's target
// is r1 + value(s1) = 5 and Adjust adds delta = 0.1*5 = 0.5 on each of its
// 16 touches (4 rotation steps x 4 tables). Touches that land on the same
// entry are also read back once per touch, so Value(s0) sums delta times
// the squared multiplicity of each entry; for the row [1,1,0,0] that sum
// is 32, giving 0.5*32 = 16.0.
func TestCloseEpisodeBackwardTargetTwoStepTrajectory(t *testing.T) {
	a := New(WithInit("zero"), WithAlpha(0.1))

	s0 := rowBoard([4]board.Cell{1, 1, 0, 0})
	a.trajectory = append(a.trajectory, Step{Reward: 0, After: s0})
	s1 := rowBoard([4]board.Cell{2, 3, 0, 0})
	a.trajectory = append(a.trajectory, Step{Reward: 5, After: s1})

	a.CloseEpisode("1")

	require.InDelta(t, float32(16.0), a.net.Value(s0), 1e-2)
}

func TestParseConfigRecognizesKeys(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "out.bin")

	opts, err := ParseConfig("name=foo role=learner init=default alpha=0.05 seed=7 save=" + savePath)
	require.NoError(t, err)

	a := New(opts...)
	require.Equal(t, "foo", a.Property("name"))
	require.Equal(t, "learner", a.Property("role"))
	require.Equal(t, "7", a.Property("seed"))

	require.NoError(t, a.Close())
}

func TestParseConfigRetainsUnrecognizedKeys(t *testing.T) {
	opts, err := ParseConfig("init=default custom=value")
	require.NoError(t, err)

	a := New(opts...)
	require.Equal(t, "value", a.Property("custom"))
}

func TestParseConfigRejectsBadAlpha(t *testing.T) {
	_, err := ParseConfig("alpha=not-a-number")
	require.Error(t, err)
}
