package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"aiplay/metrics"
	"aiplay/tictactoe"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestNewAgent(t *testing.T) {
	t.Run("building every kind", func(t *testing.T) {
		for _, kind := range []string{KindMinimax, KindMCTS, KindSampling, KindRandom} {
			a, err := NewAgent[tictactoe.Action](AgentConfig{ID: 1, Kind: kind, Episodes: 50}, nil)

			require.NoError(t, err, "Kind %s", kind)
			action, _, err := a.FindMove(tictactoe.Initial())
			require.NoError(t, err, "Kind %s", kind)
			require.Contains(t, tictactoe.Initial().Actions(), action, "Kind %s", kind)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewAgent[tictactoe.Action](AgentConfig{ID: 1, Kind: "oracle"}, nil)

		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("search agents need a budget", func(t *testing.T) {
		for _, kind := range []string{KindMCTS, KindSampling} {
			_, err := NewAgent[tictactoe.Action](AgentConfig{ID: 1, Kind: kind}, nil)

			require.ErrorIs(t, err, ErrNoBudget, "Kind %s", kind)
		}
	})
}

func TestRun(t *testing.T) {
	minimax := AgentConfig{ID: 1, Kind: KindMinimax}
	random := AgentConfig{ID: 2, Kind: KindRandom, Seed: 3}

	t.Run("alternating the first mover", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "strength")
		require.NoError(t, err)
		setup := Setup{
			Name:     "strength",
			Configs:  []AgentConfig{minimax, random},
			Matchups: [][2]int{{1, 2}, {1, 1}},
			Games:    4,
		}

		standings, err := Run[tictactoe.Action](tictactoe.Initial(), setup, metrics.NewCollector(), w)

		require.NoError(t, err)
		require.Len(t, standings, 2)
		require.Equal(t, 0, standings[0].Wins2, "Random agent should never beat minimax")
		require.Equal(t, 4, standings[0].Wins1+standings[0].Draws)
		require.Equal(t, Standing{Agent1: 1, Agent2: 1, Draws: 4}, standings[1], "Optimal self-play should always draw")

		games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, games, 9, "Header and eight games")
		require.Equal(t, "max_agent", games[0][3])
		require.Equal(t, []string{"1", "2", "1", "2"}, []string{games[1][3], games[2][3], games[3][3], games[4][3]}, "First mover should alternate")

		moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Greater(t, len(moves), 8*5, "Every game lasts at least five moves")
		require.Equal(t, []string{"game", "step", "agent", "side", "action", "goroutines", "duration", "episodes", "full_playouts", "nodes", "prunes"}, moves[0])

		configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, configs, 3)
		require.Equal(t, "minimax", configs[1][1])

		standingRows := readCSV(t, filepath.Join(w.Dir(), "standings.csv"))
		require.Equal(t, []string{"1", "1", "0", "0", "4"}, standingRows[2])

		raw, err := os.ReadFile(filepath.Join(w.Dir(), "setup.yaml"))
		require.NoError(t, err)
		var stored Setup
		require.NoError(t, yaml.Unmarshal(raw, &stored))
		require.Equal(t, setup, stored, "Setup should be stored alongside timings")
	})

	t.Run("running without a writer", func(t *testing.T) {
		setup := Setup{Configs: []AgentConfig{random}, Matchups: [][2]int{{2, 2}}, Games: 2}

		standings, err := Run[tictactoe.Action](tictactoe.Initial(), setup, nil, nil)

		require.NoError(t, err)
		require.Len(t, standings, 1)
		s := standings[0]
		require.Equal(t, 2, s.Wins1+s.Wins2+s.Draws)
	})

	t.Run("unknown agent in matchup", func(t *testing.T) {
		setup := Setup{Configs: []AgentConfig{minimax}, Matchups: [][2]int{{1, 7}}, Games: 1}

		_, err := Run[tictactoe.Action](tictactoe.Initial(), setup, nil, nil)

		require.ErrorIs(t, err, ErrUnknownAgent)
	})

	t.Run("stopping on a broken agent", func(t *testing.T) {
		broken := AgentConfig{ID: 3, Kind: KindMCTS}
		setup := Setup{Configs: []AgentConfig{minimax, broken}, Matchups: [][2]int{{1, 3}}, Games: 1}

		_, err := Run[tictactoe.Action](tictactoe.Initial(), setup, nil, nil)

		require.ErrorIs(t, err, ErrNoBudget)
	})
}
