package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"aiplay/agent"
	"aiplay/engine"
	"aiplay/experiments"
	"aiplay/game"
	"aiplay/metrics"
	"aiplay/tictactoe"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const kindHuman = "human"

func newTictactoeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play, solve and benchmark tic-tac-toe",
	}
	cmd.AddCommand(newPlayCmd(), newBestCmd(), newBenchCmd())
	return cmd
}

func newPlayCmd() *cobra.Command {
	var xKind, oKind string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game between two agents (human, minimax, mcts, sampling or random)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			// One human agent serves both sides so input is read by a single scanner
			human := agent.NewHuman(cmd.InOrStdin(), out, tictactoe.ParseAction)
			xAgent, err := newPlayer(xKind, 1, human)
			if err != nil {
				return err
			}
			oAgent, err := newPlayer(oKind, 2, human)
			if err != nil {
				return err
			}

			e := engine.NewLocal[tictactoe.Action](tictactoe.Initial(), xAgent, oAgent,
				engine.WithObserver(func(move engine.MoveRecord, state game.State[tictactoe.Action]) {
					fmt.Fprintf(out, "%v plays %s\n%v\n", mark(move.Side), move.Action, state)
				}))
			record, _, err := e.Run()
			if err != nil {
				return err
			}

			switch record.Winner {
			case game.Max.String():
				fmt.Fprintln(out, "Game over: X wins.")
			case game.Min.String():
				fmt.Fprintln(out, "Game over: O wins.")
			default:
				fmt.Fprintln(out, "Game over: tie.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xKind, "x", kindHuman, "Agent playing X")
	cmd.Flags().StringVar(&oKind, "o", experiments.KindMinimax, "Agent playing O")
	return cmd
}

func newPlayer(kind string, id int, human agent.Agent[tictactoe.Action]) (agent.Agent[tictactoe.Action], error) {
	if kind == kindHuman {
		return human, nil
	}
	return experiments.NewAgent[tictactoe.Action](agentConfig(id, kind), nil)
}

// agentConfig describes an agent of kind with the configured search budget.
func agentConfig(id int, kind string) experiments.AgentConfig {
	return experiments.AgentConfig{
		ID:          id,
		Kind:        kind,
		Goroutines:  cfg.Search.Goroutines,
		Episodes:    cfg.Search.Episodes,
		Duration:    cfg.Search.Duration,
		Exploration: cfg.Search.Exploration,
		Seed:        cfg.Search.Seed + uint64(id),
	}
}

func mark(side game.Side) tictactoe.Mark {
	if side == game.Max {
		return tictactoe.X
	}
	return tictactoe.O
}

func newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best <board>",
		Short: "Print the optimal move, e.g. best \"XX_/OO_/___\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := tictactoe.ParseBoard(args[0])
			if err != nil {
				return err
			}
			action, err := tictactoe.BestAction(board)
			if err != nil {
				return fmt.Errorf("no move on\n%v: %w", board, err)
			}
			next, err := board.Result(action)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v plays %v\n%v", board.Player(), action, next)
			return nil
		},
	}
}

func newBenchCmd() *cobra.Command {
	var (
		games       int
		outDir      string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play minimax, MCTS and random agents against each other and store the records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			collector, err := metrics.NewPrometheusCollector(reg)
			if err != nil {
				return err
			}
			if metricsAddr != "" {
				stop := serveMetrics(metricsAddr, reg)
				defer stop()
			}

			writer, err := experiments.NewWriter(outDir, "bench")
			if err != nil {
				return err
			}

			setup := experiments.Setup{
				Name: "bench",
				Configs: []experiments.AgentConfig{
					agentConfig(1, experiments.KindMinimax),
					agentConfig(2, experiments.KindMCTS),
					agentConfig(3, experiments.KindRandom),
				},
				Matchups: [][2]int{{1, 2}, {2, 3}, {1, 3}},
				Games:    games,
			}
			standings, err := experiments.Run[tictactoe.Action](tictactoe.Initial(), setup, collector, writer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %-8s %6s %6s %6s\n", "agent1", "agent2", "wins1", "wins2", "draws")
			for _, s := range standings {
				fmt.Fprintf(out, "%-8s %-8s %6d %6d %6d\n",
					setup.Configs[s.Agent1-1].Kind, setup.Configs[s.Agent2-1].Kind, s.Wins1, s.Wins2, s.Draws)
			}
			fmt.Fprintf(out, "records stored in %s\n", writer.Dir())
			return nil
		},
	}

	cmd.Flags().IntVar(&games, "games", 10, "Games per matchup")
	cmd.Flags().StringVar(&outDir, "out", "experiments", "Directory for experiment records")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while benchmarking")
	return cmd
}

// serveMetrics exposes reg on addr until the returned function is called.
func serveMetrics(addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}
}
