package env

import (
	"testing"

	"fib2048/board"

	"github.com/stretchr/testify/require"
)

func TestTakeActionFillsAnEmptyCell(t *testing.T) {
	e := New(WithSeed(42))

	var b board.Board
	before := b.NumEmpty()

	after, ok := e.TakeAction(b)
	require.True(t, ok)
	require.Equal(t, before-1, after.NumEmpty())
}

func TestTakeActionPlacesOnlyIndexOneOrTwo(t *testing.T) {
	e := New(WithSeed(7))

	var b board.Board
	for trial := 0; trial < 50; trial++ {
		after, ok := e.TakeAction(b)
		require.True(t, ok)

		placedCount := 0
		var placedValue board.Cell
		for i := 0; i < board.NumCells; i++ {
			if after.At(i) != 0 {
				placedCount++
				placedValue = after.At(i)
			}
		}
		require.Equal(t, 1, placedCount)
		require.True(t, placedValue == 1 || placedValue == 2)
	}
}

func TestTakeActionReturnsFalseOnFullBoard(t *testing.T) {
	e := New(WithSeed(1))

	var b board.Board
	for i := 0; i < board.NumCells; i++ {
		b.SetAt(i, 1)
	}

	_, ok := e.TakeAction(b)
	require.False(t, ok)
}

func TestTakeActionIsDeterministicGivenSeed(t *testing.T) {
	var b board.Board

	e1 := New(WithSeed(99))
	a1, _ := e1.TakeAction(b)

	e2 := New(WithSeed(99))
	a2, _ := e2.TakeAction(b)

	require.True(t, a1.Equal(a2))
}
