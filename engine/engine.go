package engine

import "atarigo/game"

// MaxMoves caps a game that neither captures nor runs out of moves.
const MaxMoves = 10000

// Outcomes of a finished game. A decided game reports "Player1" or
// "Player2".
const (
	Draw       = "Draw"
	Unfinished = ""
)

// Agent picks a move for the player whose turn it is. FindMove is only
// called on states with at least one legal move.
type Agent interface {
	FindMove(s *game.GameState) game.Move
}
