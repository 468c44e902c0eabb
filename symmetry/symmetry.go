// Package symmetry enumerates the eight symmetries of a square board: the
// four rotations, each with and without a reflection. The rotation and
// reflection are written once in the plainest possible way (as nested grid
// manipulations), turned into permutation templates when a Group is built,
// and only ever executed through those templates afterwards.
package symmetry

import (
	"fmt"

	"github.com/domino14/tictac/board"
	"github.com/domino14/tictac/permutation"
)

// Order is the number of elements in the symmetry group of the square.
const Order = 8

func toNested[T any](cells []T, width int) [][]T {
	nested := make([][]T, width)
	for r := range nested {
		nested[r] = cells[r*width : (r+1)*width]
	}
	return nested
}

func toFlat[T any](nested [][]T) []T {
	var flat []T
	for _, row := range nested {
		flat = append(flat, row...)
	}
	return flat
}

// RotateRaw rotates a flat width x width grid 90 degrees clockwise: the
// bottom row, read left to right, becomes the left column read top to
// bottom.
func RotateRaw[T any](cells []T, width int) []T {
	nested := toNested(cells, width)
	rotated := make([][]T, width)
	for r := range rotated {
		rotated[r] = make([]T, width)
		for c := range rotated[r] {
			rotated[r][c] = nested[width-1-c][r]
		}
	}
	return toFlat(rotated)
}

// ReflectRaw mirrors a flat grid across its center row.
func ReflectRaw[T any](cells []T, width int) []T {
	nested := toNested(cells, width)
	reflected := make([][]T, width)
	for r := range reflected {
		reflected[r] = nested[width-1-r]
	}
	return toFlat(reflected)
}

// A Group holds the precomputed rotation and reflection templates for one
// board width.
type Group struct {
	width      int
	rotation   permutation.Template
	reflection permutation.Template
}

// New extracts the rotation and reflection templates for the given width.
func New(width int) (*Group, error) {
	if width < 1 || width > board.MaxWidth {
		return nil, fmt.Errorf("%w: width %d", board.ErrMalformedBoard, width)
	}
	size := width * width
	rot, err := permutation.Extract(size, func(s []int) []int {
		return RotateRaw(s, width)
	})
	if err != nil {
		return nil, err
	}
	refl, err := permutation.Extract(size, func(s []int) []int {
		return ReflectRaw(s, width)
	})
	if err != nil {
		return nil, err
	}
	return &Group{width: width, rotation: rot, reflection: refl}, nil
}

func (g *Group) Width() int {
	return g.width
}

// Rotate turns the board 90 degrees clockwise.
func (g *Group) Rotate(b board.Board) board.Board {
	return b.Permute(g.rotation)
}

// Reflect mirrors the board across its center row.
func (g *Group) Reflect(b board.Board) board.Board {
	return b.Permute(g.reflection)
}

// Images returns the eight symmetric images of b, in this order:
//
//	b, reflect(b), r, reflect(r), r², reflect(r²), r³, reflect(r³)
//
// where r is b rotated clockwise. A board with symmetries of its own shows
// up more than once.
func (g *Group) Images(b board.Board) [Order]board.Board {
	var out [Order]board.Board
	cur := b
	for i := 0; i < Order/2; i++ {
		if i > 0 {
			cur = g.Rotate(cur)
		}
		out[2*i] = cur
		out[2*i+1] = g.Reflect(cur)
	}
	return out
}

// TransportMove carries a move through the same eight symmetries, so that
// TransportMove(m)[i] is the square in Images(b)[i] that corresponds to
// square m of b. It marks the square on an otherwise empty board, runs that
// board through Images, and reads the mark back out of each image.
func (g *Group) TransportMove(m board.Move) [Order]board.Move {
	mb, err := board.NewEmpty(g.width)
	if err != nil {
		// the width was checked in New
		panic(err)
	}
	mb = mb.Place(m, board.PlayerA)
	var out [Order]board.Move
	for i, img := range g.Images(mb) {
		out[i] = findMark(img, board.PlayerA)
	}
	return out
}

func findMark(b board.Board, mark board.Mark) board.Move {
	for i := 0; i < b.Size(); i++ {
		if b.At(i) == mark {
			return board.Move(i)
		}
	}
	return board.NoMove
}

// Templates returns, for each position in Images, the single template that
// produces that image directly.
func (g *Group) Templates() [Order]permutation.Template {
	var out [Order]permutation.Template
	cur := permutation.Identity(g.width * g.width)
	for i := 0; i < Order/2; i++ {
		if i > 0 {
			cur = cur.Then(g.rotation)
		}
		out[2*i] = cur
		out[2*i+1] = cur.Then(g.reflection)
	}
	return out
}
