package board

import (
	"bufio"
	"fmt"
	"io"
)

// ReadBoard reads 16 decimal integers denoting Fibonacci face values (in
// row-major order) and inverts them into cell indices via RFib. This is a
// replay/log format only — it never touches the core's internal
// representation beyond populating a Board.
func ReadBoard(r io.Reader) (Board, error) {
	var b Board
	br := bufio.NewReader(r)
	for i := 0; i < NumCells; i++ {
		var face int
		if _, err := fmt.Fscan(br, &face); err != nil {
			return Board{}, fmt.Errorf("board: read cell %d: %w", i, err)
		}
		idx := RFib(face)
		if idx < 0 {
			return Board{}, fmt.Errorf("board: cell %d: %d is not a Fibonacci number", i, face)
		}
		b.SetAt(i, Cell(idx))
	}
	return b, nil
}

// WriteBoard prints face values in a boxed 4x4 layout, for logs and replay
// files only.
func WriteBoard(w io.Writer, b Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "+------------------------+")
	for r := 0; r < Size; r++ {
		fmt.Fprint(bw, "|")
		for c := 0; c < Size; c++ {
			fmt.Fprintf(bw, "%6d", Fib(int(b.Get(r, c))))
		}
		fmt.Fprintln(bw, "|")
	}
	fmt.Fprintln(bw, "+------------------------+")
	return bw.Flush()
}
