package agent

import (
	"math"

	"aiplay/game"
	"aiplay/metrics"
	"aiplay/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent[A comparable] struct {
	mcts        *searcher.MCTS[A]
	temperature float64
	rng         *rand.Rand
}

// NewSampling returns an agent for self-play: it samples an action in
// proportion to its visit count raised to 1/temperature. Temperature 1 follows
// the visits, lower values approach the most visited action.
func NewSampling[A comparable](mcts *searcher.MCTS[A], temperature float64, seed uint64) Agent[A] {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent[A]{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent[A]) FindMove(state game.State[A]) (A, metrics.Snapshot, error) {
	choices, snapshot, err := a.mcts.Simulate(state)
	if err != nil {
		var zero A
		return zero, snapshot, err
	}
	policy := adjustTemperature(choices, a.temperature)
	return choices[sample(policy, a.rng.Float64())].Action, snapshot, nil
}

// adjustTemperature turns visit counts into move probabilities.
func adjustTemperature[A comparable](choices []searcher.Choice[A], temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(choices))
	for i, choice := range choices {
		policy[i] = math.Pow(choice.Visits, exponent)
		sum += policy[i]
	}
	// Normalize
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

// sample picks the index whose cumulative probability first exceeds u in [0, 1).
func sample(policy []float64, u float64) int {
	cumulative := 0.0
	for i, p := range policy {
		cumulative += p
		if u < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
