package agent

import (
	"aiplay/game"
	"aiplay/metrics"
	"aiplay/searcher"
)

type evaluationAgent[A comparable] struct {
	mcts *searcher.MCTS[A]
}

// NewMCTS returns an agent for actual game play: it searches and then plays
// the most visited action.
func NewMCTS[A comparable](mcts *searcher.MCTS[A]) Agent[A] {
	return evaluationAgent[A]{mcts: mcts}
}

func (a evaluationAgent[A]) FindMove(state game.State[A]) (A, metrics.Snapshot, error) {
	choices, snapshot, err := a.mcts.Simulate(state)
	if err != nil {
		var zero A
		return zero, snapshot, err
	}
	best, _ := searcher.Best(choices)
	return best, snapshot, nil
}
