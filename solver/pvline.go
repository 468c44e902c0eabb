package solver

import (
	"fmt"
	"strings"

	"github.com/domino14/tictac/board"
)

// A PVLine is the principal variation: the moves both players make from
// Start when each always takes the recorded best response.
type PVLine struct {
	Start   board.Board
	Moves   []board.Move
	Final   board.Board
	Outcome board.Outcome
}

// coords names a square the way ToDisplayText labels it, e.g. B3.
func coords(m board.Move, width int) string {
	r, c := m.RowCol(width)
	return fmt.Sprintf("%c%d", 'A'+c, r+1)
}

func (pv PVLine) mover(ply int) board.Mark {
	m := pv.Start.Mover()
	if ply%2 == 1 {
		m = m.Opponent()
	}
	return m
}

// String lists the moves, one per line.
func (pv PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; %v for %v\n", pv.Outcome, pv.Start.Mover())
	for i, m := range pv.Moves {
		fmt.Fprintf(&sb, "%d: %v %s\n", i+1, pv.mover(i), coords(m, pv.Start.Width()))
	}
	return sb.String()
}

// NLBString is String with no line breaks.
func (pv PVLine) NLBString() string {
	parts := make([]string, 0, len(pv.Moves)+1)
	parts = append(parts, fmt.Sprintf("PV; %v for %v", pv.Outcome, pv.Start.Mover()))
	for i, m := range pv.Moves {
		parts = append(parts, fmt.Sprintf("%d: %v %s", i+1, pv.mover(i), coords(m, pv.Start.Width())))
	}
	return strings.Join(parts, "; ")
}
