package searcher

import "errors"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)

var ErrTerminal = errors.New("searcher: state is terminal")

// Choice summarizes what the search learned about one action at the root.
type Choice[A comparable] struct {
	Action A
	Visits float64
	Value  float64 // Mean reward from the perspective of the player taking the action
}
