// Package automatic plays complete games between computer players. Its main
// use is checking the solver: a perfect player must never lose, whoever it
// plays and whichever side it's on.
package automatic

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/tictac/board"
	"github.com/domino14/tictac/solver"
)

var (
	ErrSolverLost = errors.New("solver lost a game")
)

// A Player picks a move for whoever is to move on the given board. The
// board is never over when it's asked.
type Player interface {
	Name() string
	ChooseMove(b board.Board) (board.Move, error)
}

// SolverPlayer always plays the recorded best response.
type SolverPlayer struct {
	s *solver.Solver
}

// NewSolverPlayer builds a solver for the given width and fills its table
// up front, so that no game pays for the build.
func NewSolverPlayer(width int) (*SolverPlayer, error) {
	s, err := solver.NewSolver(width)
	if err != nil {
		return nil, err
	}
	if err := s.BuildAll(); err != nil {
		return nil, err
	}
	return &SolverPlayer{s: s}, nil
}

func (p *SolverPlayer) Name() string {
	return "solver"
}

func (p *SolverPlayer) ChooseMove(b board.Board) (board.Move, error) {
	return p.s.GetBestResponse(b)
}

// RandomPlayer picks uniformly among the empty squares.
type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return "random"
}

func (RandomPlayer) ChooseMove(b board.Board) (board.Move, error) {
	moves := b.EmptySquares()
	if len(moves) == 0 {
		return board.NoMove, errors.New("no empty squares left")
	}
	return moves[frand.Intn(len(moves))], nil
}

// GameResult is a finished game.
type GameResult struct {
	Moves  []board.Move
	Final  board.Board
	Winner board.Mark
}

// GameRunner is the master struct here for the automatic game logic.
// players[0] moves first.
type GameRunner struct {
	width   int
	players [2]Player
}

// NewGameRunner just instantiates a game runner.
func NewGameRunner(width int, first, second Player) *GameRunner {
	return &GameRunner{width: width, players: [2]Player{first, second}}
}

func (r *GameRunner) playerFor(m board.Mark) Player {
	if m == board.PlayerA {
		return r.players[0]
	}
	return r.players[1]
}

// PlayGame plays one game from the empty board to the end.
func (r *GameRunner) PlayGame() (GameResult, error) {
	b, err := board.NewEmpty(r.width)
	if err != nil {
		return GameResult{}, err
	}
	var moves []board.Move
	for {
		mover := b.Mover()
		if _, over := b.Evaluate(mover); over {
			break
		}
		p := r.playerFor(mover)
		m, err := p.ChooseMove(b)
		if err != nil {
			return GameResult{}, fmt.Errorf("%s: %w", p.Name(), err)
		}
		if int(m) < 0 || int(m) >= b.Size() || b.At(int(m)) != board.Empty {
			return GameResult{}, fmt.Errorf("%s chose illegal move %v on %s",
				p.Name(), m, b.Compact())
		}
		b = b.Place(m, mover)
		moves = append(moves, m)
	}
	res := GameResult{Moves: moves, Final: b, Winner: b.Winner()}
	log.Debug().
		Str("first", r.players[0].Name()).
		Str("second", r.players[1].Name()).
		Str("final", b.Compact()).
		Stringer("winner", res.Winner).
		Msg("game-over")
	return res, nil
}
