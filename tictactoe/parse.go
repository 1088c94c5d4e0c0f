package tictactoe

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoard reads nine cells in row-major order. X and O are marks; '.', '-'
// and '_' are empty cells; '/', '|' and whitespace are ignored. The mark
// counts must be reachable by alternating play from the empty board.
func ParseBoard(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var mark Mark
		switch r {
		case 'X', 'x':
			mark = X
		case 'O', 'o':
			mark = O
		case '.', '-', '_':
			mark = Empty
		case '/', '|', ' ', '\t', '\n', '\r':
			continue
		default:
			return Board{}, fmt.Errorf("unexpected %q: %w", r, ErrInvalidBoard)
		}
		if n == Size*Size {
			return Board{}, fmt.Errorf("more than %d cells: %w", Size*Size, ErrInvalidBoard)
		}
		b[n/Size][n%Size] = mark
		n++
	}
	if n != Size*Size {
		return Board{}, fmt.Errorf("%d cells, want %d: %w", n, Size*Size, ErrInvalidBoard)
	}

	x, o := b.count()
	if x-o != 0 && x-o != 1 {
		return Board{}, fmt.Errorf("%d X and %d O: %w", x, o, ErrInvalidBoard)
	}
	return b, nil
}

// ParseAction reads "row col", zero-based, separated by a space or comma.
func ParseAction(s string) (Action, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return Action{}, fmt.Errorf("want \"row col\", got %q: %w", s, ErrIllegalAction)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Action{}, fmt.Errorf("row %q: %w", fields[0], ErrIllegalAction)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Action{}, fmt.Errorf("column %q: %w", fields[1], ErrIllegalAction)
	}
	return Action{Row: row, Col: col}, nil
}
