package searcher

import (
	"fmt"
	"math"

	"aiplay/game"
	"aiplay/metrics"
)

// Minimax returns the optimal action for the player to move, searching the
// whole game tree with alpha-beta pruning.
func Minimax[A comparable](state game.State[A]) (A, error) {
	action, _, ok := AlphaBeta(state, math.Inf(-1), math.Inf(1), metrics.NewDummyCollector())
	if !ok {
		return action, ErrTerminal
	}
	return action, nil
}

// AlphaBeta returns the best action and its minimax value within the window
// [alpha, beta]. On a terminal state there is no action: ok is false and the
// value is the state's utility. Among equally valued actions the first one
// in Actions order wins.
func AlphaBeta[A comparable](state game.State[A], alpha, beta float64, c metrics.Collector) (action A, value float64, ok bool) {
	c.AddNode()
	if state.Terminal() {
		return action, state.Utility(), false
	}

	maximizing := state.Maximizing()
	for _, a := range state.Actions() {
		next, err := state.Play(a)
		if err != nil {
			panic(fmt.Sprintf("legal action %v failed: %v", a, err))
		}
		_, v, _ := AlphaBeta(next, alpha, beta, c)

		if maximizing {
			if !ok || v > value {
				action, value, ok = a, v, true
			}
			if value >= beta {
				c.AddPrune()
				return action, value, ok
			}
			alpha = math.Max(alpha, value)
		} else {
			if !ok || v < value {
				action, value, ok = a, v, true
			}
			if value <= alpha {
				c.AddPrune()
				return action, value, ok
			}
			beta = math.Min(beta, value)
		}
	}
	return action, value, ok
}
