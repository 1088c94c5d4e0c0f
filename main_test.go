package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"aiplay/config"
	"aiplay/tictactoe"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--log-level", "disabled"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHeredityCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "family0.csv")
	require.NoError(t, os.WriteFile(data, []byte("name,mother,father,trait\nHarry,Lily,James,\nJames,,,1\nLily,,,0\n"), 0o644))
	csvPath := filepath.Join(dir, "out.csv")

	out, err := execute(t, "heredity", data, "--csv", csvPath, "--goroutines", "2")

	require.NoError(t, err)
	require.Contains(t, out, "Harry:\n  Gene:\n    2: 0.0092\n    1: 0.4557\n    0: 0.5351\n")
	stored, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	require.Contains(t, string(stored), "name,gene_0,gene_1,gene_2,trait_true,trait_false\n")

	_, err = execute(t, "heredity", filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "heredity", data, "--goroutines", "0")
	require.ErrorIs(t, err, config.ErrInvalid, "Flag should follow the config file's worker rule")
}

func TestTictactoeCommands(t *testing.T) {
	t.Run("best move", func(t *testing.T) {
		out, err := execute(t, "tictactoe", "best", "XX_/OO_/___")

		require.NoError(t, err)
		require.Contains(t, out, "X plays (0, 2)")
	})

	t.Run("invalid board", func(t *testing.T) {
		_, err := execute(t, "tictactoe", "best", "XXX/___/___")

		require.ErrorIs(t, err, tictactoe.ErrInvalidBoard)
	})

	t.Run("optimal agents tie", func(t *testing.T) {
		out, err := execute(t, "tictactoe", "play", "--x", "minimax", "--o", "minimax")

		require.NoError(t, err)
		require.Contains(t, out, "Game over: tie.")
	})

	t.Run("benchmark", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "aiplay.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("search:\n  goroutines: 2\n  episodes: 100\n"), 0o644))

		out, err := execute(t, "--config", configPath, "tictactoe", "bench", "--games", "2", "--out", dir)

		require.NoError(t, err)
		require.Contains(t, out, "records stored in")
		matches, err := filepath.Glob(filepath.Join(dir, "bench", "*", "game_records.csv"))
		require.NoError(t, err)
		require.Len(t, matches, 1)
	})
}
