package engine

import (
	"errors"
	"time"

	"aiplay/game"
	"aiplay/metrics"
)

const MaxTurns = 500

var ErrIllegalMove = errors.New("engine: agent chose an illegal move")

type Engine interface {
	// Run plays a game till it is over or a max number of moves is reached
	Run() (GameRecord, []MoveRecord, error)
}

type GameRecord struct {
	StartingSide game.Side
	Winner       string // "max", "min", "draw", or empty when stopped at the turn limit
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
}

type MoveRecord struct {
	Step   int
	Side   game.Side
	Action string
	metrics.Snapshot
}
