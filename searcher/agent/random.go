package agent

import (
	"golang.org/x/exp/rand"

	"ataxx/game"
	"ataxx/searcher"
)

// RandomAgent plays a uniformly random legal move. It serves as the
// baseline opponent in strength experiments. Identical seeds produce
// identical behavior.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) FindMove(board *game.Board, color game.PieceColor) (game.Move, searcher.SearchMetric) {
	if !board.CanMove(color) {
		return game.Pass(), searcher.SearchMetric{}
	}
	var legal []game.Move
	for _, move := range searcher.PossibleMoves(color, board) {
		if !move.IsPass() && board.LegalMove(move) {
			legal = append(legal, move)
		}
	}
	if len(legal) == 0 {
		return game.Pass(), searcher.SearchMetric{}
	}
	return legal[a.rng.Intn(len(legal))], searcher.SearchMetric{}
}
