// Package ntuple implements the n-tuple feature-extraction and
// symmetry-averaged value-estimation engine: a fixed bank of four lookup
// tables indexed by tuples of board cells.
package ntuple

import "fib2048/board"

// MaxIndex mirrors board.MaxIndex: the exclusive upper bound used when
// clamping a cell into a table index.
const MaxIndex = board.MaxIndex

// Feature is an ordered list of board cell positions.
type Feature []int

// Features are the four n-tuples the network is built from. F0/F1 are
// laterally-asymmetric 6-cell blocks; F2/F3 are symmetric 4-cell columns.
// This asymmetry is load-bearing: it is what lets the four-step rotation
// traversal in Value/Adjust stand in for the full eight-element dihedral
// group without an explicit reflection step. Changing these tuples or the
// traversal in Value/Adjust silently changes the learned function and
// invalidates any saved weight file.
var Features = [4]Feature{
	{0, 1, 4, 5, 8, 9},
	{1, 2, 5, 6, 9, 10},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
}

// tableSize is MaxIndex^len(f).
func tableSize(f Feature) int {
	size := 1
	for range f {
		size *= MaxIndex
	}
	return size
}

// Network holds the four weight tables and implements value estimation and
// in-place weight adjustment, both summed across the four-step rotation
// traversal (four of the eight dihedral orientations).
type Network struct {
	tables [4][]float32
}

// New allocates four zeroed weight tables sized per Features.
func New() *Network {
	n := &Network{}
	for i, f := range Features {
		n.tables[i] = make([]float32, tableSize(f))
	}
	return n
}

// Tables returns the underlying weight slices, in table order, for
// persistence. The returned slices alias the network's storage.
func (n *Network) Tables() [][]float32 {
	out := make([][]float32, len(n.tables))
	for i := range n.tables {
		out[i] = n.tables[i]
	}
	return out
}

// LoadTables replaces the network's weight tables wholesale, as loaded from
// a weight file. The caller is responsible for validating table count and
// sizes beforehand; a mismatched count here is a programmer error, not a
// recoverable condition, since it means a weight file for a different
// network was loaded.
func (n *Network) LoadTables(tables [][]float32) {
	if len(tables) != len(n.tables) {
		panic("ntuple: weight file table count does not match network")
	}
	for i, t := range tables {
		n.tables[i] = t
	}
}

// extractIndex computes the mixed-radix index
// sum_k min(cell(p_k), MaxIndex-1) * MaxIndex^(len-1-k).
// The clamp is the sole defense against a corrupt or overflowed cell
// value; it is cheap and catastrophe-preventing, so it stays even though
// board.Cell already guarantees values stay in range during normal play.
func extractIndex(b board.Board, f Feature) int {
	idx := 0
	for _, pos := range f {
		c := int(b.At(pos))
		if c > MaxIndex-1 {
			c = MaxIndex - 1
		}
		idx = idx*MaxIndex + c
	}
	return idx
}

// Value returns the symmetry-averaged (summed, not divided by 8) estimate
// of the board's value: the sum over four rotation steps (identity, 180,
// 90 CCW, 90 CW) of the four features' table entries.
func (n *Network) Value(b board.Board) float32 {
	var total float32
	tmp := b

	for step := 0; step < 4; step++ {
		forward(&tmp, step)
		for i, f := range Features {
			total += n.tables[i][extractIndex(tmp, f)]
		}
		backward(&tmp, step)
	}

	return total
}

// Adjust moves every weight touched by Value(board) toward target by
// alpha*(target-value(board)), the same delta added to every entry Value
// touched: 4 features x 4 rotation steps.
func (n *Network) Adjust(b board.Board, target, alpha float32) {
	errVal := target - n.Value(b)
	delta := alpha * errVal
	tmp := b

	for step := 0; step < 4; step++ {
		forward(&tmp, step)
		for i, f := range Features {
			idx := extractIndex(tmp, f)
			n.tables[i][idx] += delta
		}
		backward(&tmp, step)
	}
}

// forward/backward implement the loop-of-four traversal: identity, 180
// (rotate_left twice), 90 CCW (rotate_left), 90 CW (rotate_right) —
// and its exact inverse, so tmp returns to its pre-step state before the
// next step's transform. Only four of the eight dihedral elements are
// visited; the remaining reflection symmetry is baked into Features'
// choice of laterally-asymmetric F0/F1 blocks, not into an explicit
// reflection here. Preserve this traversal exactly, or retrain from
// scratch — see Features.
func forward(b *board.Board, step int) {
	switch step {
	case 0:
	case 1:
		b.RotateLeft()
		b.RotateLeft()
	case 2:
		b.RotateLeft()
	case 3:
		b.RotateRight()
	}
}

func backward(b *board.Board, step int) {
	switch step {
	case 0:
	case 1:
		b.RotateRight()
		b.RotateRight()
	case 2:
		b.RotateRight()
	case 3:
		b.RotateLeft()
	}
}
