package experiments

import (
	"errors"
	"fmt"
	"time"

	"aiplay/agent"
	"aiplay/metrics"
	"aiplay/searcher"
)

const (
	KindMinimax  = "minimax"
	KindMCTS     = "mcts"
	KindSampling = "sampling"
	KindRandom   = "random"
)

var (
	ErrUnknownKind  = errors.New("experiments: unknown agent kind")
	ErrUnknownAgent = errors.New("experiments: matchup names an unknown agent")
	ErrNoBudget     = errors.New("experiments: search agent needs episodes or a duration")
)

type AgentConfig struct {
	ID          int           `yaml:"id"`
	Kind        string        `yaml:"kind"`
	Goroutines  int           `yaml:"goroutines,omitempty"`
	Episodes    int           `yaml:"episodes,omitempty"`
	Duration    time.Duration `yaml:"duration,omitempty"`
	Exploration float64       `yaml:"exploration,omitempty"`
	Temperature float64       `yaml:"temperature,omitempty"` // Sampling agents only
	Seed        uint64        `yaml:"seed"`
}

// NewAgent builds the agent described by config. Search agents report to c.
func NewAgent[A comparable](config AgentConfig, c metrics.Collector) (agent.Agent[A], error) {
	switch config.Kind {
	case KindMinimax:
		return agent.NewMinimax[A](c), nil
	case KindMCTS:
		mcts, err := createMCTS[A](config, c)
		if err != nil {
			return nil, err
		}
		return agent.NewMCTS(mcts), nil
	case KindSampling:
		mcts, err := createMCTS[A](config, c)
		if err != nil {
			return nil, err
		}
		temperature := config.Temperature
		if temperature <= 0 {
			temperature = 1
		}
		return agent.NewSampling(mcts, temperature, config.Seed), nil
	case KindRandom:
		return agent.NewRandom[A](config.Seed), nil
	default:
		return nil, fmt.Errorf("agent %d kind %q: %w", config.ID, config.Kind, ErrUnknownKind)
	}
}

func createMCTS[A comparable](config AgentConfig, c metrics.Collector) (*searcher.MCTS[A], error) {
	if config.Episodes <= 0 && config.Duration <= 0 {
		return nil, fmt.Errorf("agent %d: %w", config.ID, ErrNoBudget)
	}

	options := []searcher.Option{searcher.WithSeed(config.Seed)}
	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if c != nil {
		options = append(options, searcher.WithMetrics(c))
	}
	return searcher.NewMCTS[A](config.Goroutines, options...), nil
}
