package board

// fibTable holds fib(0..32). Treated as a constant; the merge rule operates
// on indices into this table, never on face values.
var fibTable = [33]int{
	0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233,
	377, 610, 987, 1597, 2584, 4181, 6765, 10946, 17711, 28657,
	46368, 75025, 121393, 196418, 317811, 514229, 832040, 1346269,
	2178309, 3524578,
}

// Fib returns the i-th Fibonacci number, for i in [0, 33).
func Fib(i int) int {
	return fibTable[i]
}

// RFib returns the index i such that Fib(i) == f, or -1 if f is not one of
// the tabled Fibonacci numbers.
func RFib(f int) int {
	for i, v := range fibTable {
		if v == f {
			return i
		}
	}
	return -1
}
