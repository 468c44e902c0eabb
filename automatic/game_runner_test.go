package automatic

import (
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/tictac/board"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// lowestSquarePlayer always takes the lowest empty square.
type lowestSquarePlayer struct{}

func (lowestSquarePlayer) Name() string { return "lowest" }

func (lowestSquarePlayer) ChooseMove(b board.Board) (board.Move, error) {
	return b.EmptySquares()[0], nil
}

// stubbornPlayer always asks for square 0, taken or not.
type stubbornPlayer struct{}

func (stubbornPlayer) Name() string { return "stubborn" }

func (stubbornPlayer) ChooseMove(b board.Board) (board.Move, error) {
	return 0, nil
}

func TestSolverSelfPlayDraws(t *testing.T) {
	is := is.New(t)
	sp, err := NewSolverPlayer(3)
	is.NoErr(err)

	res, err := NewGameRunner(3, sp, sp).PlayGame()
	is.NoErr(err)
	is.Equal(res.Winner, board.Empty)
	is.Equal(len(res.Moves), 9)
	is.True(res.Final.IsFull())
}

func TestSolverWinsSmallBoardFirst(t *testing.T) {
	is := is.New(t)
	sp, err := NewSolverPlayer(2)
	is.NoErr(err)

	for i := 0; i < 20; i++ {
		res, err := NewGameRunner(2, sp, RandomPlayer{}).PlayGame()
		is.NoErr(err)
		is.Equal(res.Winner, board.PlayerA)
		is.Equal(len(res.Moves), 3)
	}
}

func TestSolverBeatsLowestSquare(t *testing.T) {
	is := is.New(t)
	sp, err := NewSolverPlayer(3)
	is.NoErr(err)

	// X opens in the corner and never blocks.
	res, err := NewGameRunner(3, lowestSquarePlayer{}, sp).PlayGame()
	is.NoErr(err)
	is.Equal(res.Winner, board.PlayerB)
}

func TestIllegalMove(t *testing.T) {
	is := is.New(t)
	_, err := NewGameRunner(3, stubbornPlayer{}, stubbornPlayer{}).PlayGame()
	is.True(err != nil)
}

func TestRandomPlayerMovesLegally(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 50; i++ {
		res, err := NewGameRunner(4, RandomPlayer{}, RandomPlayer{}).PlayGame()
		is.NoErr(err)
		seen := map[board.Move]bool{}
		for _, m := range res.Moves {
			is.True(!seen[m])
			seen[m] = true
		}
		_, over := res.Final.Evaluate(res.Final.Mover())
		is.True(over)
	}
}
