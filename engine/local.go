package engine

import (
	"fmt"
	"time"

	"aiplay/agent"
	"aiplay/game"

	"github.com/rs/zerolog/log"
)

type Option[A comparable] func(e *Local[A])

func WithMaxTurns[A comparable](turns int) Option[A] {
	return func(e *Local[A]) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithObserver is called after every move with the new state.
func WithObserver[A comparable](observe func(move MoveRecord, state game.State[A])) Option[A] {
	return func(e *Local[A]) {
		e.observe = observe
	}
}

// Local runs a game in-process between two agents, one per side.
type Local[A comparable] struct {
	state    game.State[A]
	agents   [2]agent.Agent[A] // Indexed by game.Side
	maxTurns int
	observe  func(MoveRecord, game.State[A])
}

var _ Engine = (*Local[int])(nil)

func NewLocal[A comparable](state game.State[A], maxAgent, minAgent agent.Agent[A], options ...Option[A]) *Local[A] {
	if maxAgent == nil || minAgent == nil {
		panic("need an agent for each side")
	}
	e := &Local[A]{
		state:    state,
		agents:   [2]agent.Agent[A]{game.Max: maxAgent, game.Min: minAgent},
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current game state.
func (e *Local[A]) State() game.State[A] {
	return e.state
}

// Run executes the entire game loop until the game is over.
func (e *Local[A]) Run() (GameRecord, []MoveRecord, error) {
	record := GameRecord{
		StartingSide: game.ToMove(e.state),
		StartTime:    time.Now(),
	}
	var moves []MoveRecord

	log.Info().Msgf("%v is starting", record.StartingSide)

	for turn := 1; !e.state.Terminal() && turn <= e.maxTurns; turn++ {
		side := game.ToMove(e.state)

		action, snapshot, err := e.agents[side].FindMove(e.state)
		if err != nil {
			return e.finish(record, moves), moves, fmt.Errorf("turn %d: %v agent: %w", turn, side, err)
		}
		next, err := e.state.Play(action)
		if err != nil {
			return e.finish(record, moves), moves, fmt.Errorf("turn %d: %v played %v: %w: %w", turn, side, action, ErrIllegalMove, err)
		}

		move := MoveRecord{
			Step:     turn,
			Side:     side,
			Action:   fmt.Sprint(action),
			Snapshot: snapshot,
		}
		moves = append(moves, move)
		log.Debug().
			Int("step", turn).
			Stringer("side", side).
			Str("action", move.Action).
			Dur("duration", snapshot.Duration).
			Msg("move played")

		e.state = next
		if e.observe != nil {
			e.observe(move, next)
		}
	}

	record = e.finish(record, moves)
	if record.Winner == "" {
		log.Warn().Msgf("stopped after %d turns with no result", e.maxTurns)
	} else {
		log.Info().Msgf("game over after %d moves: %s", record.TotalMoves, record.Winner)
	}
	return record, moves, nil
}

func (e *Local[A]) finish(record GameRecord, moves []MoveRecord) GameRecord {
	record.EndTime = time.Now()
	record.Duration = record.EndTime.Sub(record.StartTime)
	record.TotalMoves = len(moves)
	if e.state.Terminal() {
		record.Winner = game.Outcome(e.state)
	}
	return record
}
