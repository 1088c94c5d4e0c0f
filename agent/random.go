package agent

import (
	"aiplay/game"
	"aiplay/metrics"
	"aiplay/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent[A comparable] struct {
	rng *rand.Rand
}

// NewRandom returns an agent that plays a uniformly random legal action.
func NewRandom[A comparable](seed uint64) Agent[A] {
	return &randomAgent[A]{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent[A]) FindMove(state game.State[A]) (A, metrics.Snapshot, error) {
	var action A
	if state.Terminal() {
		return action, metrics.Snapshot{}, searcher.ErrTerminal
	}
	actions := state.Actions()
	return actions[a.rng.Intn(len(actions))], metrics.Snapshot{Goroutines: 1}, nil
}
