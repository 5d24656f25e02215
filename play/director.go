package play

import "github.com/they4kman/termsweep/game"

// Director plays the game in place of a human, one move per turn
type Director interface {
	// Next picks the move to make on the board, or returns false once it has
	// nothing left to play.
	Next(board *game.Board) (Command, bool)
}
