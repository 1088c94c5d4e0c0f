package agent

import (
	"errors"

	"aiplay/game"
	"aiplay/metrics"
)

var ErrNoInput = errors.New("agent: input closed before a move was entered")

type Agent[A comparable] interface {
	// FindMove returns an action for the player to move and performance metrics (if collected) from the search
	FindMove(state game.State[A]) (A, metrics.Snapshot, error)
}
