package agent

import (
	"ataxx/game"
	"ataxx/searcher"
)

// MinimaxAgent plays with the fixed-depth alpha-beta searcher.
type MinimaxAgent struct {
	searcher *searcher.Minimax
}

func NewMinimaxAgent(options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{
		searcher: searcher.NewMinimax(options...),
	}
}

func (a *MinimaxAgent) FindMove(board *game.Board, color game.PieceColor) (game.Move, searcher.SearchMetric) {
	return a.searcher.FindMove(board, color)
}
