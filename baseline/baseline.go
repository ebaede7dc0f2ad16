// Package baseline implements fixed heuristic players for evaluating the
// learner against: score-greedy, space-greedy, monotonic, corner, and a
// plain-random mover.
package baseline

import (
	"fmt"

	"fib2048/agent"
	"fib2048/board"
	"fib2048/utils"

	"golang.org/x/exp/rand"
)

// Mode names a heuristic. ModeNames mirrors the order Player recognizes
// them in, used for validation and display.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeScore     Mode = "score"
	ModeSpace     Mode = "space"
	ModeMonotonic Mode = "monotonic"
	ModeCorner    Mode = "corner"
)

// ModeNames lists the recognized modes in a stable order.
var ModeNames = []Mode{ModeRandom, ModeScore, ModeSpace, ModeMonotonic, ModeCorner}

// Player is a heuristic move-picker. Unlike agent.Agent it holds no
// trainable weights and never records a trajectory; it exists only to give
// the learner something to play against.
type Player struct {
	mode Mode
	rng  *rand.Rand
}

// New constructs a heuristic player for mode. It returns an error if mode
// is not one of ModeNames.
func New(mode Mode, seed uint64) (*Player, error) {
	if utils.FindIndex(ModeNames, mode) == -1 {
		return nil, fmt.Errorf("baseline: unrecognized mode %q", mode)
	}
	return &Player{mode: mode, rng: rand.New(rand.NewSource(seed))}, nil
}

// TakeAction picks a move according to the player's heuristic. It returns
// Null if no direction is legal.
func (p *Player) TakeAction(before board.Board) agent.Action {
	order := [4]int{0, 1, 2, 3}
	p.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	switch p.mode {
	case ModeScore:
		return p.bestByScore(before, order)
	case ModeSpace:
		return p.bestBySpace(before, order)
	case ModeMonotonic:
		return p.bestByMonotonic(before, order)
	case ModeCorner:
		return p.bestByCorner(before, order)
	default: // ModeRandom
		return p.firstLegal(before, order)
	}
}

func (p *Player) firstLegal(before board.Board, order [4]int) agent.Action {
	for _, op := range order {
		tmp := before
		if tmp.Slide(board.Direction(op)) != -1 {
			return agent.Action{Dir: board.Direction(op)}
		}
	}
	return agent.Action{Null: true}
}

// bestByScore favors the move with the highest immediate reward.
func (p *Player) bestByScore(before board.Board, order [4]int) agent.Action {
	bestOp := -1
	bestReward := 0
	for _, op := range order {
		tmp := before
		reward := tmp.Slide(board.Direction(op))
		if reward == -1 {
			continue
		}
		if reward >= bestReward {
			bestReward = reward
			bestOp = op
		}
	}
	return opToAction(bestOp)
}

// bestBySpace favors the move leaving the most empty cells.
func (p *Player) bestBySpace(before board.Board, order [4]int) agent.Action {
	bestOp := -1
	bestCount := 0
	for _, op := range order {
		tmp := before
		reward := tmp.Slide(board.Direction(op))
		if reward == -1 {
			continue
		}
		count := tmp.NumEmpty()
		if count >= bestCount {
			bestCount = count
			bestOp = op
		}
	}
	return opToAction(bestOp)
}

// bestByMonotonic favors reward plus the resulting board's longest
// monotonic run.
func (p *Player) bestByMonotonic(before board.Board, order [4]int) agent.Action {
	bestOp := -1
	best := 0
	for _, op := range order {
		tmp := before
		reward := tmp.Slide(board.Direction(op))
		if reward == -1 {
			continue
		}
		score := reward + tmp.Monotonic()
		if score >= best {
			best = score
			bestOp = op
		}
	}
	return opToAction(bestOp)
}

// bestByCorner favors reward plus the resulting board's corner sum.
func (p *Player) bestByCorner(before board.Board, order [4]int) agent.Action {
	bestOp := -1
	best := 0
	for _, op := range order {
		tmp := before
		reward := tmp.Slide(board.Direction(op))
		if reward == -1 {
			continue
		}
		score := reward + tmp.CornerSum()
		if score >= best {
			best = score
			bestOp = op
		}
	}
	return opToAction(bestOp)
}

func opToAction(op int) agent.Action {
	if op == -1 {
		return agent.Action{Null: true}
	}
	return agent.Action{Dir: board.Direction(op)}
}
