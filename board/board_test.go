package board

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/tictac/permutation"
)

func mustInts(t *testing.T, width int, cells ...int) Board {
	t.Helper()
	b, err := FromInts(width, cells)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewRejectsMalformed(t *testing.T) {
	is := is.New(t)

	_, err := FromInts(3, []int{0, 0, 0})
	is.True(errors.Is(err, ErrMalformedBoard))

	_, err = FromInts(3, []int{0, 0, 0, 0, 2, 0, 0, 0, 0})
	is.True(errors.Is(err, ErrMalformedBoard))

	_, err = New(2, []Mark{0, 0, 5, 0})
	is.True(errors.Is(err, ErrMalformedBoard))

	_, err = NewEmpty(0)
	is.True(errors.Is(err, ErrMalformedBoard))
	_, err = NewEmpty(MaxWidth + 1)
	is.True(errors.Is(err, ErrMalformedBoard))

	is.True(errors.Is(Board{}.Valid(), ErrMalformedBoard))
}

func TestParse(t *testing.T) {
	is := is.New(t)
	a, err := Parse(3, "1,1,0, 0,-1,-1, 0,0,0")
	is.NoErr(err)
	b, err := Parse(3, "XX./.OO/...")
	is.NoErr(err)
	is.Equal(a, b)
	is.Equal(a.Compact(), "XX./.OO/...")
	is.Equal(a.String(), "XX.\n.OO\n...")

	c, err := Parse(3, "(1, 1, 0, 0, -1, -1, 0, 0, 0)")
	is.NoErr(err)
	is.Equal(a, c)

	_, err = Parse(3, "XX./.OZ/...")
	is.True(errors.Is(err, ErrMalformedBoard))
	_, err = Parse(3, "1,1,zero,0,0,0,0,0,0")
	is.True(errors.Is(err, ErrMalformedBoard))
}

func TestPlaceReturnsNewBoard(t *testing.T) {
	is := is.New(t)
	b, err := NewEmpty(3)
	is.NoErr(err)
	b2 := b.Place(4, PlayerA)
	is.Equal(b.At(4), Empty)
	is.Equal(b2.At(4), PlayerA)
	is.True(b != b2)
	is.Equal(b2, b.Place(4, PlayerA))
	is.Equal(b2.AtRC(1, 1), PlayerA)
	is.Equal(b2.Mover(), PlayerB)
	is.Equal(b.Mover(), PlayerA)
}

func TestPlacePanicsOnTakenSquare(t *testing.T) {
	is := is.New(t)
	defer func() {
		is.True(recover() != nil)
	}()
	b := Sample(VsForkingRow)
	b.Place(0, PlayerA)
}

func TestEmptySquares(t *testing.T) {
	b := Sample(VsForkingRow)
	assert.Equal(t, []Move{2, 3, 6, 7, 8}, b.EmptySquares())
	assert.Equal(t, []int{1, 1, 0, 0, -1, -1, 0, 0, 0}, b.Ints())
	assert.Equal(t, 2, b.Count(PlayerA))
	assert.False(t, b.IsFull())
	assert.False(t, b.IsEmpty())
}

func TestLines(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Lines(3)), 8)
	is.Equal(Lines(3)[6], []int{0, 4, 8})
	is.Equal(Lines(3)[7], []int{2, 4, 6})
	is.Equal(len(Lines(4)), 10)
	is.Equal(Lines(4)[8], []int{0, 5, 10, 15})
	is.Equal(Lines(4)[9], []int{3, 6, 9, 12})
	is.Equal(Lines(1), [][]int{{0}, {0}, {0}, {0}})
}

func TestEvaluate(t *testing.T) {
	is := is.New(t)

	type evalCase struct {
		cells   []int
		mover   Mark
		done    bool
		outcome Outcome
	}
	cases := []evalCase{
		{[]int{0, 0, 0, 0, 0, 0, 0, 0, 0}, PlayerB, false, Draw},
		{[]int{1, 1, -1, 0, 0, 0, 0, 0, 0}, PlayerB, false, Draw},
		{[]int{1, -1, -1, 0, 1, 0, 0, 0, 1}, PlayerB, true, Loss},
		{[]int{1, 1, 1, 0, 0, 0, -1, -1, 0}, PlayerB, true, Loss},
		{[]int{1, 1, -1, 1, 0, -1, 0, 0, -1}, PlayerA, true, Loss},
		{[]int{1, 1, 1, -1, 0, -1, 0, 0, -1}, PlayerA, true, Win},
		{[]int{1, 1, -1, -1, -1, 1, 1, 1, -1}, PlayerA, true, Draw},
	}
	for _, c := range cases {
		b := mustInts(t, 3, c.cells...)
		outcome, done := b.Evaluate(c.mover)
		is.Equal(done, c.done)
		if done {
			is.Equal(outcome, c.outcome)
		}
	}
}

func TestEvaluateIgnoresClaimedTurn(t *testing.T) {
	is := is.New(t)
	// A completed line wins for its owner whoever is said to be moving.
	b := Sample(VsXWonBoth)
	o, done := b.Evaluate(PlayerA)
	is.True(done)
	is.Equal(o, Win)
	o, done = b.Evaluate(PlayerB)
	is.True(done)
	is.Equal(o, Loss)
	is.Equal(b.Winner(), PlayerA)

	o, done = Sample(VsCatsGame).Evaluate(PlayerB)
	is.True(done)
	is.Equal(o, Draw)
}

func TestEvaluateOtherWidths(t *testing.T) {
	is := is.New(t)
	b := mustInts(t, 1, 1)
	o, done := b.Evaluate(PlayerB)
	is.True(done)
	is.Equal(o, Loss)

	b = mustInts(t, 4,
		0, 0, 0, -1,
		1, 0, -1, 0,
		1, -1, 0, 0,
		-1, 1, 1, 0)
	o, done = b.Evaluate(PlayerA)
	is.True(done)
	is.Equal(o, Loss)
}

func TestCheckReachable(t *testing.T) {
	is := is.New(t)
	is.NoErr(Sample(VsOpening).CheckReachable())
	is.NoErr(Sample(VsXWonBoth).CheckReachable())
	is.NoErr(Sample(VsCatsGame).CheckReachable())

	// too many X
	err := mustInts(t, 3, 1, 1, 0, 0, 0, 0, 0, 0, 0).CheckReachable()
	is.True(errors.Is(err, ErrUnreachableBoard))
	// O moved first
	err = mustInts(t, 3, -1, 0, 0, 0, 0, 0, 0, 0, 0).CheckReachable()
	is.True(errors.Is(err, ErrUnreachableBoard))
	// both have a line
	err = mustInts(t, 3, 1, 1, 1, -1, -1, -1, 0, 0, 0).CheckReachable()
	is.True(errors.Is(err, ErrUnreachableBoard))
	// X won, but O kept playing
	err = mustInts(t, 3, 1, 1, 1, -1, -1, 0, -1, 0, 0).CheckReachable()
	is.True(errors.Is(err, ErrUnreachableBoard))
	// two disjoint X lines can't both be finished by a single move
	err = mustInts(t, 5,
		1, 1, 1, 1, 1,
		-1, -1, -1, 0, 0,
		-1, -1, -1, 0, 0,
		-1, -1, -1, 0, 0,
		1, 1, 1, 1, 1).CheckReachable()
	is.True(errors.Is(err, ErrUnreachableBoard))
	// a fork: one move finished both the top row and the left column
	is.NoErr(mustInts(t, 3, 1, 1, 1, 1, -1, -1, 1, -1, -1).CheckReachable())
}

// Every reachable 3x3 position, counted the brute-force way.
func TestReachableCount(t *testing.T) {
	is := is.New(t)
	cells := make([]Mark, 9)
	total := 0
	var rec func(i int)
	rec = func(i int) {
		if i == len(cells) {
			b, err := New(3, cells)
			is.NoErr(err)
			if b.CheckReachable() == nil {
				total++
			}
			return
		}
		for _, m := range []Mark{Empty, PlayerA, PlayerB} {
			cells[i] = m
			rec(i + 1)
		}
	}
	rec(0)
	is.Equal(total, 5478)
}

func TestPermute(t *testing.T) {
	is := is.New(t)
	b := Sample(VsForkingRow)
	// reverse
	tmpl := permutation.Template{8, 7, 6, 5, 4, 3, 2, 1, 0}
	is.Equal(b.Permute(tmpl).Ints(), []int{0, 0, 0, -1, -1, 0, 0, 1, 1})
	is.Equal(b.Permute(tmpl).Permute(tmpl), b)
}

func TestMoveRowCol(t *testing.T) {
	is := is.New(t)
	r, c := Move(7).RowCol(3)
	is.Equal(r, 2)
	is.Equal(c, 1)
	is.Equal(MoveAt(3, 2, 1), Move(7))
	is.Equal(NoMove.String(), "none")
	is.Equal(Win.Negate(), Loss)
	is.Equal(Draw.Negate(), Draw)
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	expected := "\n" +
		"   A B C \n" +
		"   ------\n" +
		" 1|X X . |\n" +
		" 2|. O O |\n" +
		" 3|. . . |\n" +
		"   ------\n"
	is.Equal(Sample(VsForkingRow).ToDisplayText(), expected)
}
