package agent

import (
	"ataxx/game"
	"ataxx/searcher"
)

// Agent picks one move per turn for a color on a board position.
type Agent interface {
	// FindMove returns a move for color on board, plus search metrics if
	// the agent collects them.
	FindMove(board *game.Board, color game.PieceColor) (game.Move, searcher.SearchMetric)
}
