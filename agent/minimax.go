package agent

import (
	"math"

	"aiplay/game"
	"aiplay/metrics"
	"aiplay/searcher"
)

type minimaxAgent[A comparable] struct {
	metrics metrics.Collector
}

// NewMinimax returns an agent that plays optimally by searching the full game
// tree with alpha-beta pruning. A nil collector disables metrics.
func NewMinimax[A comparable](c metrics.Collector) Agent[A] {
	if c == nil {
		c = metrics.NewDummyCollector()
	}
	return minimaxAgent[A]{metrics: c}
}

func (a minimaxAgent[A]) FindMove(state game.State[A]) (A, metrics.Snapshot, error) {
	a.metrics.Start(1)
	action, _, ok := searcher.AlphaBeta(state, math.Inf(-1), math.Inf(1), a.metrics)
	snapshot := a.metrics.Complete()
	if !ok {
		return action, snapshot, searcher.ErrTerminal
	}
	return action, snapshot, nil
}
