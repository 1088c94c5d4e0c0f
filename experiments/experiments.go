package experiments

import (
	"fmt"
	"time"

	"aiplay/engine"
	"aiplay/game"
	"aiplay/metrics"

	"github.com/rs/zerolog/log"
)

// Setup describes an experiment: which agents exist and which pairs of them
// play each other.
type Setup struct {
	Name     string        `yaml:"name"`
	Configs  []AgentConfig `yaml:"configs"`
	Matchups [][2]int      `yaml:"matchups"` // Pairs of AgentConfig.ID
	Games    int           `yaml:"games"`    // Per matchup
	MaxTurns int           `yaml:"maxTurns,omitempty"`
}

type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID
	Agent2   int // AgentConfig.ID
	MaxAgent int // AgentConfig.ID of the agent moving first
	Winner   int // AgentConfig.ID, 0 for a draw or unfinished game
	engine.GameRecord
}

type MoveRecord struct {
	Game  int // GameRecord.ID
	Agent int // AgentConfig.ID
	engine.MoveRecord
}

// Standing tallies the results of one matchup.
type Standing struct {
	Agent1 int
	Agent2 int
	Wins1  int
	Wins2  int
	Draws  int
}

func (s *Standing) credit(agent1 bool) {
	if agent1 {
		s.Wins1++
	} else {
		s.Wins2++
	}
}

// Run plays every matchup of setup from initial, alternating which agent
// moves first, and stores the results with w when it is not nil.
func Run[A comparable](initial game.State[A], setup Setup, c metrics.Collector, w *Writer) ([]Standing, error) {
	if c == nil {
		c = metrics.NewDummyCollector()
	}
	configs := make(map[int]AgentConfig, len(setup.Configs))
	for _, config := range setup.Configs {
		configs[config.ID] = config
	}
	for _, matchup := range setup.Matchups {
		for _, id := range matchup {
			if _, ok := configs[id]; !ok {
				return nil, fmt.Errorf("agent %d: %w", id, ErrUnknownAgent)
			}
		}
	}

	start := time.Now()
	count := 0
	standings := make([]Standing, 0, len(setup.Matchups))
	gameRecords := []GameRecord{}
	moveRecords := []MoveRecord{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range setup.Matchups {
		config1, config2 := configs[matchup[0]], configs[matchup[1]]
		standing := Standing{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.Matchups), config1, config2)

		for i := 0; i < setup.Games; i++ {
			count++
			// Alternate the starting agent
			first, second := config1, config2
			if i%2 == 1 {
				first, second = config2, config1
			}

			gameRecord, moves, err := runGame(initial, first, second, uint64(count), setup.MaxTurns, c)
			if err != nil {
				return standings, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			record := GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				MaxAgent:   first.ID,
				GameRecord: gameRecord,
			}
			// Positions rather than IDs decide the standing, so self-play matchups count too
			switch gameRecord.Winner {
			case game.Max.String():
				record.Winner = first.ID
				standing.credit(i%2 == 0)
			case game.Min.String():
				record.Winner = second.ID
				standing.credit(i%2 == 1)
			default:
				standing.Draws++
			}
			gameRecords = append(gameRecords, record)

			for _, move := range moves {
				id := first.ID
				if move.Side == game.Min {
					id = second.ID
				}
				moveRecords = append(moveRecords, MoveRecord{Game: count, Agent: id, MoveRecord: move})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(setup.Matchups), i+1, gameRecord.Winner)
		}
		standings = append(standings, standing)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(setup.Matchups), standing)
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if w == nil {
		return standings, nil
	}
	if err := store(w, setup, start, time.Now(), gameRecords, moveRecords, standings); err != nil {
		return standings, err
	}
	return standings, nil
}

func store(w *Writer, setup Setup, start, end time.Time, games []GameRecord, moves []MoveRecord, standings []Standing) error {
	if err := w.WriteSetup(setup, start, end); err != nil {
		return fmt.Errorf("failed to store setup: %w", err)
	}
	if err := w.WriteAgentConfigs(setup.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := w.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := w.WriteStandings(standings); err != nil {
		return fmt.Errorf("failed to write standings: %w", err)
	}
	return nil
}

// runGame plays a single game between two agents. The game number offsets
// every agent's seed so repeated games differ.
func runGame[A comparable](initial game.State[A], maxConfig, minConfig AgentConfig, gameNumber uint64, maxTurns int, c metrics.Collector) (engine.GameRecord, []engine.MoveRecord, error) {
	maxConfig.Seed += gameNumber
	minConfig.Seed += gameNumber

	maxAgent, err := NewAgent[A](maxConfig, c)
	if err != nil {
		return engine.GameRecord{}, nil, err
	}
	minAgent, err := NewAgent[A](minConfig, c)
	if err != nil {
		return engine.GameRecord{}, nil, err
	}

	e := engine.NewLocal(initial, maxAgent, minAgent, engine.WithMaxTurns[A](maxTurns))
	return e.Run()
}
