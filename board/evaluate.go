package board

import "fmt"

// lines[w] holds every winning line for a board of width w: the rows, then
// the columns, then the two main diagonals.
var lines [MaxWidth + 1][][]int

func init() {
	for w := 1; w <= MaxWidth; w++ {
		lines[w] = makeLines(w)
	}
}

func makeLines(w int) [][]int {
	ls := make([][]int, 0, 2*w+2)
	for r := 0; r < w; r++ {
		row := make([]int, w)
		for c := range row {
			row[c] = r*w + c
		}
		ls = append(ls, row)
	}
	for c := 0; c < w; c++ {
		col := make([]int, w)
		for r := range col {
			col[r] = r*w + c
		}
		ls = append(ls, col)
	}
	diag := make([]int, w)
	anti := make([]int, w)
	for i := 0; i < w; i++ {
		diag[i] = (w + 1) * i
		anti[i] = (w - 1) * (i + 1)
	}
	return append(ls, diag, anti)
}

// Lines returns the squares of every winning line for the given width.
// The result is shared; don't modify it.
func Lines(width int) [][]int {
	return lines[width]
}

// lineOwner returns the mark that fills the whole line, or Empty.
func (b Board) lineOwner(line []int) Mark {
	sum := 0
	for _, i := range line {
		sum += int(b.cells[i])
	}
	switch sum {
	case int(b.width):
		return PlayerA
	case -int(b.width):
		return PlayerB
	}
	return Empty
}

// Winner returns the owner of the first completed line found, or Empty.
func (b Board) Winner() Mark {
	for _, line := range lines[b.width] {
		if o := b.lineOwner(line); o != Empty {
			return o
		}
	}
	return Empty
}

// Evaluate decides whether the game is over, and if so what the result is
// for mover. The boolean is false while the game is still going.
//
// We return on the first completed line. Only one player can ever hold a
// line in a board reached by alternating play.
func (b Board) Evaluate(mover Mark) (Outcome, bool) {
	if w := b.Winner(); w != Empty {
		if w == mover {
			return Win, true
		}
		return Loss, true
	}
	if b.IsFull() {
		return Draw, true
	}
	return Draw, false
}

func (b Board) hasLine(mark Mark) bool {
	for _, line := range lines[b.width] {
		if b.lineOwner(line) == mark {
			return true
		}
	}
	return false
}

// CheckReachable returns ErrUnreachableBoard (wrapped) if the position could
// not have come up in a real game where PlayerA moves first, the players
// alternate, and play stops as soon as someone completes a line.
func (b Board) CheckReachable() error {
	if err := b.Valid(); err != nil {
		return err
	}
	xCount, oCount := b.Count(PlayerA), b.Count(PlayerB)
	if xCount != oCount && xCount != oCount+1 {
		return fmt.Errorf("%w: %d X and %d O on the board", ErrUnreachableBoard, xCount, oCount)
	}
	xLine, oLine := b.hasLine(PlayerA), b.hasLine(PlayerB)
	var winner Mark
	switch {
	case xLine && oLine:
		return fmt.Errorf("%w: both players have a line", ErrUnreachableBoard)
	case xLine:
		if xCount != oCount+1 {
			return fmt.Errorf("%w: O moved after X already won", ErrUnreachableBoard)
		}
		winner = PlayerA
	case oLine:
		if xCount != oCount {
			return fmt.Errorf("%w: X moved after O already won", ErrUnreachableBoard)
		}
		winner = PlayerB
	default:
		return nil
	}
	// The winning move must have been the last one: some square of the
	// winner's, taken back, leaves a board nobody had won yet.
	for i, c := range b.cells[:b.Size()] {
		if c != winner {
			continue
		}
		prev := b
		prev.cells[i] = Empty
		if prev.Winner() == Empty {
			return nil
		}
	}
	return fmt.Errorf("%w: the game was already won before the last move", ErrUnreachableBoard)
}
