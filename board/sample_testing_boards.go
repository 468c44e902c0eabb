package board

// This file contains some sample boards, used solely for testing. They're
// all 3x3 and written in the integer form Parse understands.

// VsWho is a string representation of a board.
type VsWho string

const (
	// VsOpening is the empty board; perfect play from here is a draw.
	VsOpening VsWho = `0,0,0, 0,0,0, 0,0,0`
	// VsForkingRow: X to move has two winning continuations, squares 2
	// and 3.
	VsForkingRow VsWho = `1,1,0, 0,-1,-1, 0,0,0`
	// VsLastSquare: X wins by taking the only square left.
	VsLastSquare VsWho = `1,-1,1, -1,1,1, -1,-1,0`
	// VsFirstSquare: X wins by taking the top-left corner.
	VsFirstSquare VsWho = `0,1,1, -1,-1,1, 1,-1,-1`
	// VsCatsGame is a full board with no line.
	VsCatsGame VsWho = `1,1,-1, -1,-1,1, 1,1,-1`
	// VsXWonBoth: X completed both diagonals with the final move.
	VsXWonBoth VsWho = `1,-1,1, -1,1,-1, 1,-1,1`
	// VsCornerFork: X to move wins in three different ways.
	VsCornerFork VsWho = `1,0,0, 1,-1,-1, 0,0,0`
)

// Sample parses one of the boards above. It panics on error since the
// samples are fixed.
func Sample(v VsWho) Board {
	b, err := Parse(3, string(v))
	if err != nil {
		panic(err)
	}
	return b
}
