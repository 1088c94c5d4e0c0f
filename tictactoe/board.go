package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"aiplay/game"
)

const Size = 3

var (
	ErrIllegalAction = errors.New("tictactoe: illegal action")
	ErrInvalidBoard  = errors.New("tictactoe: invalid board")
)

type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

type Action struct {
	Row int
	Col int
}

func (a Action) String() string {
	return fmt.Sprintf("(%d, %d)", a.Row, a.Col)
}

// Board is a value: every operation returns a new board and leaves the
// receiver untouched.
type Board [Size][Size]Mark

// lines holds the three rows, three columns and two diagonals.
var lines = [8][Size]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Initial returns the empty starting board.
func Initial() Board {
	return Board{}
}

func (b Board) count() (x, o int) {
	for _, row := range b {
		for _, cell := range row {
			switch cell {
			case X:
				x++
			case O:
				o++
			}
		}
	}
	return x, o
}

// Player returns the mark to move next. X moves first.
func (b Board) Player() Mark {
	x, o := b.count()
	if x == o {
		return X
	}
	return O
}

// Actions returns the empty cells in row-major order.
func (b Board) Actions() []Action {
	actions := make([]Action, 0, Size*Size)
	for i, row := range b {
		for j, cell := range row {
			if cell == Empty {
				actions = append(actions, Action{Row: i, Col: j})
			}
		}
	}
	return actions
}

// Result returns the board after the player to move marks the cell at a.
func (b Board) Result(a Action) (Board, error) {
	if a.Row < 0 || a.Row >= Size || a.Col < 0 || a.Col >= Size {
		return b, fmt.Errorf("%v is off the board: %w", a, ErrIllegalAction)
	}
	if b[a.Row][a.Col] != Empty {
		return b, fmt.Errorf("%v is taken by %v: %w", a, b[a.Row][a.Col], ErrIllegalAction)
	}
	next := b
	next[a.Row][a.Col] = b.Player()
	return next, nil
}

// Winner returns the mark holding a full row, column or diagonal, or Empty.
func (b Board) Winner() Mark {
	for _, line := range lines {
		first := b[line[0].Row][line[0].Col]
		if first == Empty {
			continue
		}
		if b[line[1].Row][line[1].Col] == first && b[line[2].Row][line[2].Col] == first {
			return first
		}
	}
	return Empty
}

func (b Board) full() bool {
	x, o := b.count()
	return x+o == Size*Size
}

func (b Board) Terminal() bool {
	return b.full() || b.Winner() != Empty
}

// Utility is 1 when X has won, -1 when O has won and 0 otherwise, draws and
// unfinished boards alike.
func (b Board) Utility() float64 {
	switch b.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteString("---+---+---\n")
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + cell.String() + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Board satisfies game.State so the generic searchers can play it.
var _ game.State[Action] = Board{}

func (b Board) Play(a Action) (game.State[Action], error) {
	next, err := b.Result(a)
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (b Board) Maximizing() bool {
	return b.Player() == X
}
