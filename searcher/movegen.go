package searcher

import "ataxx/game"

// PossibleMoves enumerates candidate moves for who on board: for every cell
// owned by who, one relocation per empty cell within the 5x5 offset window
// around it, plus exactly one trailing pass so the list is never empty.
// Candidates are not legality-checked here; that is Board.LegalMove's job.
// The (0,0) offset targets the occupied source cell, so it drops out
// without special-casing. Purely reads the board; order is deterministic.
func PossibleMoves(who game.PieceColor, board *game.Board) []game.Move {
	var moves []game.Move
	for i := 0; i < game.ExtendedSide*game.ExtendedSide; i++ {
		if board.Get(i) != who {
			continue
		}
		col0 := byte('a' + i%game.ExtendedSide - 2)
		row0 := byte('1' + i/game.ExtendedSide - 2)
		for dc := -2; dc <= 2; dc++ {
			for dr := -2; dr <= 2; dr++ {
				if board.Get(game.Neighbor(i, dc, dr)) == game.Empty {
					col1 := byte(int(col0) + dc)
					row1 := byte(int(row0) + dr)
					moves = append(moves, game.NewMove(col0, row0, col1, row1))
				}
			}
		}
	}
	return append(moves, game.Pass())
}
