package board

import "strconv"

// A Mark is what occupies a single square of the board: nothing, or one of
// the two players' marks. The numeric values matter: a completed line sums
// to +width or -width.
type Mark int8

const (
	Empty   Mark = 0
	PlayerA Mark = 1
	PlayerB Mark = -1
)

// Opponent returns the other player's mark. Empty stays Empty.
func (m Mark) Opponent() Mark {
	return -m
}

func (m Mark) valid() bool {
	return m == Empty || m == PlayerA || m == PlayerB
}

// String returns X for the first player, O for the second and . for an
// empty square.
func (m Mark) String() string {
	switch m {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	case Empty:
		return "."
	}
	return "?"
}

// A Move is the index of the square to fill, in row-major order.
type Move int

// NoMove is the move recorded for a board on which the game is already over.
const NoMove Move = -1

// RowCol converts a move into a zero-based (row, col) pair.
func (m Move) RowCol(width int) (int, int) {
	return int(m) / width, int(m) % width
}

// MoveAt is the inverse of RowCol.
func MoveAt(width, row, col int) Move {
	return Move(row*width + col)
}

func (m Move) String() string {
	if m == NoMove {
		return "none"
	}
	return strconv.Itoa(int(m))
}

// An Outcome is the result of optimal play, always from the point of view of
// the player who is about to move.
type Outcome int8

const (
	Loss Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

// Negate flips the outcome to the other player's perspective.
func (o Outcome) Negate() Outcome {
	return -o
}

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	}
	return "unknown"
}
