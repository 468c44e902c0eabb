package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// String renders the board as rows of X, O and '.', one row per line.
func (b Board) String() string {
	var sb strings.Builder
	w := int(b.width)
	for r := 0; r < w; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < w; c++ {
			sb.WriteString(b.cells[r*w+c].String())
		}
	}
	return sb.String()
}

// Compact renders the board on a single line with rows separated by
// slashes, e.g. XX./.OO/...; Parse reads this back.
func (b Board) Compact() string {
	return strings.ReplaceAll(b.String(), "\n", "/")
}

// ToDisplayText draws the board with column letters and row numbers.
func (b Board) ToDisplayText() string {
	var str string
	n := b.Width()
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + b.AtRC(i, j).String() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// Parse reads a board in one of two forms:
//
//	1,1,0, 0,-1,-1, 0,0,0   integers separated by commas, spaces or slashes
//	XX./.OO/...             one character per square, slashes and spaces ignored
//
// For the character form, X is the first player, O the second, and any of
// . - _ is an empty square.
func Parse(width int, s string) (Board, error) {
	if strings.ContainsAny(s, "0123456789") {
		return parseInts(width, s)
	}
	marks := make([]Mark, 0, width*width)
	for _, ch := range s {
		switch {
		case ch == '/' || unicode.IsSpace(ch):
			continue
		case ch == 'X' || ch == 'x':
			marks = append(marks, PlayerA)
		case ch == 'O' || ch == 'o':
			marks = append(marks, PlayerB)
		case ch == '.' || ch == '-' || ch == '_':
			marks = append(marks, Empty)
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrMalformedBoard, ch)
		}
	}
	return New(width, marks)
}

func parseInts(width int, s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == '(' || r == ')' || unicode.IsSpace(r)
	})
	cells := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
		}
		cells[i] = v
	}
	return FromInts(width, cells)
}
