package board

import (
	"errors"
	"fmt"

	"github.com/domino14/tictac/permutation"
)

const (
	// MaxWidth is the widest board we can represent. Anything past 3 is
	// only practical for single lookups near the end of a game.
	MaxWidth = 5
	MaxCells = MaxWidth * MaxWidth
)

var (
	ErrMalformedBoard   = errors.New("malformed board")
	ErrUnreachableBoard = errors.New("board is not reachable by alternating legal play")
)

// A Board is a width x width grid of marks, stored flat in row-major order.
// It's a value type: every operation returns a new Board, and two boards
// compare equal with == exactly when all their squares match, so a Board is
// usable directly as a map key.
type Board struct {
	width int8
	cells [MaxCells]Mark
}

func checkWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("%w: width %d outside [1, %d]", ErrMalformedBoard, width, MaxWidth)
	}
	return nil
}

// NewEmpty returns an empty board of the given width.
func NewEmpty(width int) (Board, error) {
	if err := checkWidth(width); err != nil {
		return Board{}, err
	}
	return Board{width: int8(width)}, nil
}

// New creates a board from a flat, row-major list of marks.
func New(width int, cells []Mark) (Board, error) {
	if err := checkWidth(width); err != nil {
		return Board{}, err
	}
	if len(cells) != width*width {
		return Board{}, fmt.Errorf("%w: %d cells for a board of width %d",
			ErrMalformedBoard, len(cells), width)
	}
	b := Board{width: int8(width)}
	for i, c := range cells {
		if !c.valid() {
			return Board{}, fmt.Errorf("%w: cell %d has value %d", ErrMalformedBoard, i, c)
		}
		b.cells[i] = c
	}
	return b, nil
}

// FromInts creates a board from plain integers (0, 1 or -1).
func FromInts(width int, cells []int) (Board, error) {
	marks := make([]Mark, len(cells))
	for i, c := range cells {
		if c < -1 || c > 1 {
			return Board{}, fmt.Errorf("%w: cell %d has value %d", ErrMalformedBoard, i, c)
		}
		marks[i] = Mark(c)
	}
	return New(width, marks)
}

// Width is the number of rows (and columns).
func (b Board) Width() int {
	return int(b.width)
}

// Size is the number of squares.
func (b Board) Size() int {
	return int(b.width) * int(b.width)
}

// At returns the mark at square i.
func (b Board) At(i int) Mark {
	return b.cells[i]
}

// AtRC returns the mark at the given row and column.
func (b Board) AtRC(row, col int) Mark {
	return b.cells[row*int(b.width)+col]
}

// Cells returns a copy of the squares.
func (b Board) Cells() []Mark {
	c := make([]Mark, b.Size())
	copy(c, b.cells[:b.Size()])
	return c
}

// Ints returns the squares as plain integers.
func (b Board) Ints() []int {
	c := make([]int, b.Size())
	for i := range c {
		c[i] = int(b.cells[i])
	}
	return c
}

// Place returns a copy of the board with mark written on square m. It
// panics if the square is out of range or already taken; callers only place
// on squares they got from EmptySquares.
func (b Board) Place(m Move, mark Mark) Board {
	if int(m) < 0 || int(m) >= b.Size() {
		panic(fmt.Sprintf("place: move %d off a board of size %d", m, b.Size()))
	}
	if b.cells[m] != Empty {
		panic(fmt.Sprintf("place: square %d is already taken", m))
	}
	b.cells[m] = mark
	return b
}

// Count returns how many squares hold the given mark.
func (b Board) Count(mark Mark) int {
	n := 0
	for _, c := range b.cells[:b.Size()] {
		if c == mark {
			n++
		}
	}
	return n
}

// IsFull returns true if there is nowhere left to play.
func (b Board) IsFull() bool {
	return b.Count(Empty) == 0
}

// IsEmpty returns true if no one has played yet.
func (b Board) IsEmpty() bool {
	return b.Count(Empty) == b.Size()
}

// EmptySquares lists the playable squares in ascending order.
func (b Board) EmptySquares() []Move {
	moves := make([]Move, 0, b.Size())
	for i, c := range b.cells[:b.Size()] {
		if c == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Mover is the player whose turn it is. PlayerA always moves first, so
// whoever has fewer marks goes next.
func (b Board) Mover() Mark {
	if b.Count(PlayerA) > b.Count(PlayerB) {
		return PlayerB
	}
	return PlayerA
}

// Permute applies a permutation template to the squares.
func (b Board) Permute(t permutation.Template) Board {
	out := Board{width: b.width}
	permutation.ApplyTo(out.cells[:b.Size()], b.cells[:b.Size()], t)
	return out
}

// Valid returns an error if the board has an illegal width or mark. Boards
// built through New can't fail this; a zero Board{} does.
func (b Board) Valid() error {
	if err := checkWidth(int(b.width)); err != nil {
		return err
	}
	for i, c := range b.cells {
		if !c.valid() {
			return fmt.Errorf("%w: cell %d has value %d", ErrMalformedBoard, i, c)
		}
		if i >= b.Size() && c != Empty {
			return fmt.Errorf("%w: mark outside the board at %d", ErrMalformedBoard, i)
		}
	}
	return nil
}
