// Package solver computes perfect play for every reachable position of an
// N x N game of tic-tac-toe by exhaustive minimax. Results are memoized by
// board, and every time a board is resolved the answer is written for all
// eight of its symmetric images at once.
package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/tictac/board"
	"github.com/domino14/tictac/symmetry"
)

var (
	// ErrLookupMiss means a board we should have resolved isn't in the
	// table. It's never expected; seeing it means the solver has a bug.
	ErrLookupMiss = errors.New("board missing from response table after resolution")
)

// worseThanLoss is below any real outcome, so the first move looked at
// always becomes the best so far.
const worseThanLoss = board.Loss - 1

// Solver owns a response table and the symmetry templates for one board
// width. It's not safe for concurrent use; give each goroutine its own.
type Solver struct {
	width  int
	group  *symmetry.Group
	ttable *ResponseTable
	nodes  uint64
}

// Stats describes the response table and how much work went into it.
type Stats struct {
	Width    int    `yaml:"width"`
	Entries  int    `yaml:"entries"`
	Created  uint64 `yaml:"created"`
	Rejected uint64 `yaml:"rejected"`
	Lookups  uint64 `yaml:"lookups"`
	Hits     uint64 `yaml:"hits"`
	Nodes    uint64 `yaml:"nodes"`
}

// NewSolver precomputes the rotation and reflection templates for the
// given width and starts with an empty table.
func NewSolver(width int) (*Solver, error) {
	g, err := symmetry.New(width)
	if err != nil {
		return nil, err
	}
	return &Solver{
		width:  width,
		group:  g,
		ttable: newResponseTable(),
	}, nil
}

func (s *Solver) Width() int {
	return s.width
}

// Len is the number of boards in the response table.
func (s *Solver) Len() int {
	return s.ttable.Len()
}

func (s *Solver) Stats() Stats {
	return Stats{
		Width:    s.width,
		Entries:  s.ttable.Len(),
		Created:  s.ttable.created,
		Rejected: s.ttable.rejected,
		Lookups:  s.ttable.lookups,
		Hits:     s.ttable.hits,
		Nodes:    s.nodes,
	}
}

// Digest summarizes the whole table in one number. Two solvers with the
// same entries have the same digest.
func (s *Solver) Digest() uint64 {
	return s.ttable.digest()
}

// Lookup returns the entry for b without resolving anything.
func (s *Solver) Lookup(b board.Board) (ResponseEntry, bool) {
	return s.ttable.peek(b)
}

func (s *Solver) check(b board.Board) error {
	if err := b.Valid(); err != nil {
		return err
	}
	if b.Width() != s.width {
		return fmt.Errorf("%w: board width %d, solver width %d",
			board.ErrMalformedBoard, b.Width(), s.width)
	}
	return b.CheckReachable()
}

// BuildAll resolves the entire game tree, starting from the empty board
// with PlayerA to move.
func (s *Solver) BuildAll() error {
	b, err := board.NewEmpty(s.width)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := s.BuildBestResponses(b, board.PlayerA); err != nil {
		return err
	}
	st := s.Stats()
	log.Info().
		Int("width", s.width).
		Int("entries", st.Entries).
		Uint64("nodes", st.Nodes).
		Uint64("lookups", st.Lookups).
		Uint64("hits", st.Hits).
		Dur("elapsed", time.Since(start)).
		Msg("best-responses-built")
	return nil
}

// BuildBestResponses fills in the table for b and every position that can
// follow it. mover is the player to move; pass board.Empty to have it
// worked out from the board. A mover that disagrees with the board's fill
// parity is rejected, as is any board that can't come up in a real game.
func (s *Solver) BuildBestResponses(b board.Board, mover board.Mark) error {
	if err := s.check(b); err != nil {
		return err
	}
	expected := b.Mover()
	switch mover {
	case board.Empty:
		mover = expected
	case expected:
	default:
		return fmt.Errorf("%w: it is %v's turn, not %v", board.ErrUnreachableBoard,
			expected, mover)
	}
	log.Debug().Str("board", b.Compact()).Stringer("mover", mover).Msg("building-best-responses")
	s.build(b, mover)
	return nil
}

// build is the recursive minimax. It assumes b is reachable and mover is
// the player whose turn it is.
func (s *Solver) build(b board.Board, mover board.Mark) {
	if _, ok := s.ttable.lookup(b); ok {
		return
	}
	s.nodes++

	// Whether the game is over, and the result for the mover, is the same
	// for every image of the board.
	if outcome, over := b.Evaluate(mover); over {
		for _, img := range s.group.Images(b) {
			s.ttable.store(img, ResponseEntry{Move: board.NoMove, Outcome: outcome})
		}
		return
	}

	bestValue := worseThanLoss
	bestMove := board.NoMove
	opp := mover.Opponent()
	for _, m := range b.EmptySquares() {
		child := b.Place(m, mover)
		s.build(child, opp)
		ce, ok := s.ttable.peek(child)
		if !ok {
			panic(fmt.Errorf("%w: %s", ErrLookupMiss, child.Compact()))
		}
		// What's good for the opponent is bad for us. Ties keep the
		// lowest square.
		value := ce.Outcome.Negate()
		if value > bestValue {
			bestValue, bestMove = value, m
		}
	}

	// Carry the move along with the board through each symmetry. The
	// board itself is images[0], so it keeps the move found above.
	images := s.group.Images(b)
	moves := s.group.TransportMove(bestMove)
	for i := range images {
		s.ttable.store(images[i], ResponseEntry{Move: moves[i], Outcome: bestValue})
	}
}

// BestResponse returns the table entry for b, resolving whatever is needed
// first. An empty table is filled in completely, from the empty board.
func (s *Solver) BestResponse(b board.Board) (ResponseEntry, error) {
	if err := s.check(b); err != nil {
		return ResponseEntry{}, err
	}
	if e, ok := s.ttable.lookup(b); ok {
		return e, nil
	}
	if s.ttable.Len() == 0 {
		if err := s.BuildAll(); err != nil {
			return ResponseEntry{}, err
		}
	} else {
		s.build(b, b.Mover())
	}
	e, ok := s.ttable.peek(b)
	if !ok {
		return ResponseEntry{}, fmt.Errorf("%w: %s", ErrLookupMiss, b.Compact())
	}
	return e, nil
}

// GetBestResponse returns just the move for b; board.NoMove if the game is
// already over.
func (s *Solver) GetBestResponse(b board.Board) (board.Move, error) {
	e, err := s.BestResponse(b)
	if err != nil {
		return board.NoMove, err
	}
	return e.Move, nil
}

// resolved returns the entry for a board reached from an already checked
// one, resolving it on the spot if needed.
func (s *Solver) resolved(b board.Board) ResponseEntry {
	s.build(b, b.Mover())
	e, ok := s.ttable.peek(b)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrLookupMiss, b.Compact()))
	}
	return e
}

// OptimalMoves returns every move that does as well as the best response,
// in ascending order. The move the table records is one of them; which one
// is an artifact of search order.
func (s *Solver) OptimalMoves(b board.Board) ([]board.Move, error) {
	e, err := s.BestResponse(b)
	if err != nil {
		return nil, err
	}
	if e.Move == board.NoMove {
		return nil, nil
	}
	mover := b.Mover()
	return lo.Filter(b.EmptySquares(), func(m board.Move, _ int) bool {
		return s.resolved(b.Place(m, mover)).Outcome.Negate() == e.Outcome
	}), nil
}

// PrincipalVariation plays out best responses from b until the game ends.
func (s *Solver) PrincipalVariation(b board.Board) (PVLine, error) {
	e, err := s.BestResponse(b)
	if err != nil {
		return PVLine{}, err
	}
	pv := PVLine{Start: b, Outcome: e.Outcome}
	cur := b
	for e.Move != board.NoMove {
		pv.Moves = append(pv.Moves, e.Move)
		cur = cur.Place(e.Move, cur.Mover())
		e = s.resolved(cur)
	}
	pv.Final = cur
	return pv, nil
}
