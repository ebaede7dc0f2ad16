package board

// Transpose swaps cells across the main diagonal.
func (b *Board) Transpose() {
	for r := 0; r < Size; r++ {
		for c := r + 1; c < Size; c++ {
			b.cells[r][c], b.cells[c][r] = b.cells[c][r], b.cells[r][c]
		}
	}
}

// ReflectHorizontal mirrors each row left-right.
func (b *Board) ReflectHorizontal() {
	for r := 0; r < Size; r++ {
		b.cells[r][0], b.cells[r][3] = b.cells[r][3], b.cells[r][0]
		b.cells[r][1], b.cells[r][2] = b.cells[r][2], b.cells[r][1]
	}
}

// ReflectVertical mirrors each column top-bottom.
func (b *Board) ReflectVertical() {
	for c := 0; c < Size; c++ {
		b.cells[0][c], b.cells[3][c] = b.cells[3][c], b.cells[0][c]
		b.cells[1][c], b.cells[2][c] = b.cells[2][c], b.cells[1][c]
	}
}

// RotateRight rotates the board 90 degrees clockwise.
func (b *Board) RotateRight() {
	b.Transpose()
	b.ReflectHorizontal()
}

// RotateLeft rotates the board 90 degrees counter-clockwise.
func (b *Board) RotateLeft() {
	b.Transpose()
	b.ReflectVertical()
}

// Reverse rotates the board 180 degrees.
func (b *Board) Reverse() {
	b.ReflectHorizontal()
	b.ReflectVertical()
}
