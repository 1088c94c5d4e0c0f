package game

// State is a position in a two-player, zero-sum, perfect-information game
// that the searchers can explore.
//
// State should be immutable - operations on State always return a new copy
type State[A comparable] interface {
	// Actions lists the legal actions, in a stable order
	Actions() []A
	// Play returns the state after the player to move takes action
	Play(action A) (State[A], error)
	Terminal() bool
	// Utility scores a terminal state from the maximizer's perspective
	Utility() float64
	// Maximizing reports whether the player to move is the maximizer
	Maximizing() bool
}

// Side identifies one of the two players.
type Side int

const (
	Max Side = iota
	Min
)

func (s Side) String() string {
	if s == Max {
		return "max"
	}
	return "min"
}

// ToMove returns the side whose turn it is in state.
func ToMove[A comparable](state State[A]) Side {
	if state.Maximizing() {
		return Max
	}
	return Min
}

// Outcome names the result of a finished game: the winning side, or "draw".
func Outcome[A comparable](state State[A]) string {
	switch u := state.Utility(); {
	case u > 0:
		return Max.String()
	case u < 0:
		return Min.String()
	default:
		return "draw"
	}
}
