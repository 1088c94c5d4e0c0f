package tictactoe

import "aiplay/searcher"

// BestAction returns the optimal move for the player to move. It fails with
// searcher.ErrTerminal once the game is over.
func BestAction(b Board) (Action, error) {
	return searcher.Minimax[Action](b)
}
