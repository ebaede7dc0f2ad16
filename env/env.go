// Package env implements the random-tile placement environment: after the
// player's move, it drops a new tile onto a uniformly random empty cell,
// weighted 90%/10% toward the two smallest tile indices.
package env

import (
	"fib2048/board"

	"golang.org/x/exp/rand"
)

// Environment places a tile on a board's after-state, mirroring the
// player-side agent.TakeAction contract: a false second return value (the
// counterpart of a Null action) signals no empty cell was available (the
// board is full).
type Environment struct {
	rng   *rand.Rand
	space [board.NumCells]int
}

// Option configures an Environment at construction.
type Option func(e *Environment)

// WithSeed seeds the environment's RNG deterministically, for replay and
// testing. Without it the environment seeds from a fixed default rather
// than reading system entropy per instance.
func WithSeed(seed uint64) Option {
	return func(e *Environment) { e.rng = rand.New(rand.NewSource(seed)) }
}

// New constructs a random environment.
func New(opts ...Option) *Environment {
	e := &Environment{}
	for i := range e.space {
		e.space[i] = i
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(1))
	}
	return e
}

// TakeAction scans the board's cells in a shuffled order and places a new
// tile (index 1 with probability 0.9, index 2 with probability 0.1) on the
// first empty cell found. It returns false if the board is full.
func (e *Environment) TakeAction(after board.Board) (board.Board, bool) {
	order := e.space
	e.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, pos := range order {
		if after.At(pos) != 0 {
			continue
		}
		tile := board.Cell(2)
		if e.rng.Intn(10) != 0 {
			tile = 1
		}
		after.Place(pos, tile)
		return after, true
	}
	return after, false
}
