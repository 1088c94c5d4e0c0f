package searcher

import (
	"math"
	"testing"

	"aiplay/metrics"

	"github.com/stretchr/testify/require"
)

func TestAlphaBeta(t *testing.T) {
	t.Run("terminal state has no action", func(t *testing.T) {
		_, value, ok := AlphaBeta[int](leaf(1), math.Inf(-1), math.Inf(1), metrics.NewDummyCollector())

		require.False(t, ok, "Terminal state should have no action")
		require.Equal(t, 1.0, value, "Terminal state should be valued by its utility")
	})

	t.Run("textbook tree value and pruning", func(t *testing.T) {
		// Max over three min nodes: min(3,12,8)=3, min(2,4,6)=2, min(14,5,2)=2
		root := maxNode(
			minNode(leaf(3), leaf(12), leaf(8)),
			minNode(leaf(2), leaf(4), leaf(6)),
			minNode(leaf(14), leaf(5), leaf(2)),
		)
		c := metrics.NewCollector()

		action, value, ok := AlphaBeta[int](root, math.Inf(-1), math.Inf(1), c)

		require.True(t, ok)
		require.Equal(t, 0, action, "Should pick the first min node")
		require.Equal(t, 3.0, value, "Should compute the minimax value")
		got := c.Complete()
		require.Equal(t, 2, got.Prunes, "Second and third min nodes should be cut once they drop below 3")
		require.Equal(t, 11, got.Nodes, "Pruned leaves should not be visited")
	})

	t.Run("ties keep the first action", func(t *testing.T) {
		root := maxNode(leaf(0), leaf(1), leaf(1))

		action, value, _ := AlphaBeta[int](root, math.Inf(-1), math.Inf(1), metrics.NewDummyCollector())

		require.Equal(t, 1, action, "Should keep the first action with the best value")
		require.Equal(t, 1.0, value)
	})

	t.Run("minimizer picks the lowest value", func(t *testing.T) {
		root := minNode(leaf(1), leaf(-1), leaf(0))

		action, value, _ := AlphaBeta[int](root, math.Inf(-1), math.Inf(1), metrics.NewDummyCollector())

		require.Equal(t, 1, action)
		require.Equal(t, -1.0, value)
	})

	t.Run("solving nim", func(t *testing.T) {
		for pile := 1; pile <= 10; pile++ {
			action, value, ok := AlphaBeta[int](nim{pile: pile, maximizing: true}, math.Inf(-1), math.Inf(1), metrics.NewDummyCollector())

			require.True(t, ok)
			if pile%3 == 0 {
				require.Equal(t, -1.0, value, "Pile %d should lose for the player to move", pile)
			} else {
				require.Equal(t, 1.0, value, "Pile %d should win for the player to move", pile)
				require.Equal(t, pile%3, action, "Pile %d should be reduced to a multiple of three", pile)
			}
		}
	})
}

func TestMinimax(t *testing.T) {
	t.Run("best action", func(t *testing.T) {
		action, err := Minimax[int](nim{pile: 5, maximizing: false})

		require.NoError(t, err)
		require.Equal(t, 2, action, "Minimizer should leave a multiple of three")
	})

	t.Run("terminal state", func(t *testing.T) {
		_, err := Minimax[int](nim{pile: 0})

		require.ErrorIs(t, err, ErrTerminal)
	})
}
