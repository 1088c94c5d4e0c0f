package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTScore(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.score(5.0, 10)

		expected := 5.0/10 + math.Sqrt(CSquared*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001, "Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("single parent visit has no exploration bonus", func(t *testing.T) {
		policy := newUCT(CSquared, 1)

		require.Equal(t, -1.0, policy.score(Loss, 1), "ln(1) is zero")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Panics(t, func() {
			policy.score(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		low := newUCT(CSquared, 100).score(5.0, 10)
		high := newUCT(CSquared, 1000).score(5.0, 10)

		require.Greater(t, high, low, "More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.score(5.0, 10), policy.score(5.0, 20), "More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.score(10.0, 10), policy.score(5.0, 10), "More rewards should increase exploitation term")
	})

	t.Run("larger exploration constant favours rare children", func(t *testing.T) {
		greedy := newUCT(0.1, 100)
		curious := newUCT(10, 100)

		// A child with a better average but many visits against one rarely tried
		require.Greater(t, greedy.score(8, 10), greedy.score(0, 1))
		require.Greater(t, curious.score(0, 1), curious.score(8, 10))
	})
}
