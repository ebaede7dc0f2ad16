package ntuple

import (
	"testing"

	"fib2048/board"

	"github.com/stretchr/testify/require"
)

func TestTableSizesMatchFeatures(t *testing.T) {
	n := New()
	require.Equal(t, MaxIndex*MaxIndex*MaxIndex*MaxIndex*MaxIndex*MaxIndex, len(n.tables[0]))
	require.Equal(t, MaxIndex*MaxIndex*MaxIndex*MaxIndex*MaxIndex*MaxIndex, len(n.tables[1]))
	require.Equal(t, MaxIndex*MaxIndex*MaxIndex*MaxIndex, len(n.tables[2]))
	require.Equal(t, MaxIndex*MaxIndex*MaxIndex*MaxIndex, len(n.tables[3]))
}

func TestValueOfFreshNetworkIsZero(t *testing.T) {
	n := New()
	var b board.Board
	require.Equal(t, float32(0), n.Value(b))
}

// Adjust touches the same 16 table entries (4 rotation steps x 4 tables)
// that Value reads back, so from a fresh zero network Value(b) after a
// single Adjust(b, target, alpha) call lands at 16*alpha*target, not the
// raw target.
func TestAdjustReachesTargetWithAlphaOne(t *testing.T) {
	n := New()
	var b board.Board
	b.SetAt(0, 5)
	b.SetAt(5, 3)

	n.Adjust(b, 10, 1.0)
	require.InDelta(t, float32(160), n.Value(b), 1e-2)
}

func TestAdjustMovesPartwayWithFractionalAlpha(t *testing.T) {
	n := New()
	var b board.Board
	b.SetAt(0, 5)

	n.Adjust(b, 10, 0.5)
	require.InDelta(t, float32(240), n.Value(b), 1e-2)
}

// TestValueRespectsRotationSymmetry checks that rotating a board by 90
// degrees and re-evaluating after training only on the original orientation
// still reads back the trained value: the four-step traversal means every
// rotation of a board touches the exact same table entries.
func TestValueRespectsRotationSymmetry(t *testing.T) {
	n := New()
	var b board.Board
	b.SetAt(0, 5)
	b.SetAt(5, 3)
	b.SetAt(10, 2)
	n.Adjust(b, 7, 1.0)

	rotated := b
	rotated.RotateRight()
	require.InDelta(t, n.Value(b), n.Value(rotated), 1e-3)
}

func TestLoadTablesRoundTrip(t *testing.T) {
	n := New()
	var b board.Board
	b.SetAt(0, 4)
	n.Adjust(b, 3, 1.0)

	tables := n.Tables()
	m := New()
	m.LoadTables(tables)
	require.Equal(t, n.Value(b), m.Value(b))
}

func TestExtractIndexClampsOutOfRangeCells(t *testing.T) {
	var b board.Board
	b.SetAt(0, MaxIndex-1)
	idxInRange := extractIndex(b, Features[0])

	var c board.Board
	c.SetAt(0, MaxIndex+5)
	idxClamped := extractIndex(c, Features[0])

	require.Equal(t, idxInRange, idxClamped)
}
