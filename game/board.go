package game

import (
	"fmt"
	"strings"
)

const (
	// Side is the playable board dimension.
	Side = 7
	// ExtendedSide is the board dimension including the two-cell Blocked
	// border, sized so that a jump from any playable cell still lands
	// inside the cell array.
	ExtendedSide = Side + 4

	// JumpLimit is the number of consecutive jumps (by both sides
	// combined, without an intervening extend) after which the game ends.
	JumpLimit = 25
)

// Board is the full game position: an ExtendedSide x ExtendedSide cell
// array around the 7x7 playable region, the side to move, piece counts,
// and the consecutive-jump counter. Board mutates in place; use Copy to
// explore hypothetical futures.
type Board struct {
	cells      [ExtendedSide * ExtendedSide]PieceColor
	whoseMove  PieceColor
	redPieces  int
	bluePieces int
	numJumps   int
}

// Index returns the linear index of the external coordinate (col, row),
// with col in 'a'..'g' and row in '1'..'7'.
func Index(col, row byte) int {
	return (int(col-'a') + 2) + (int(row-'1')+2)*ExtendedSide
}

// Neighbor returns the linear index dc columns and dr rows away from sq.
func Neighbor(sq, dc, dr int) int {
	return sq + dc + dr*ExtendedSide
}

// NewBoard returns the standard starting position: Red on a7 and g1, Blue
// on a1 and g7, Red to move.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.Put('a', '7', Red)
	b.Put('g', '1', Red)
	b.Put('a', '1', Blue)
	b.Put('g', '7', Blue)
	return b
}

// NewEmptyBoard returns a board whose playable region is entirely empty,
// with Red to move. Useful for setting up arbitrary positions.
func NewEmptyBoard() *Board {
	b := &Board{whoseMove: Red}
	for i := range b.cells {
		b.cells[i] = Blocked
	}
	for r := byte('1'); r <= '7'; r++ {
		for c := byte('a'); c <= 'g'; c++ {
			b.cells[Index(c, r)] = Empty
		}
	}
	return b
}

// Copy returns a deep copy of b. The copy shares no state with b, so a
// search may mutate it freely without corrupting the original.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Get returns the contents of the cell at linear index sq. Out-of-range
// indices read as Blocked.
func (b *Board) Get(sq int) PieceColor {
	if sq < 0 || sq >= len(b.cells) {
		return Blocked
	}
	return b.cells[sq]
}

// WhoseMove returns the side to move.
func (b *Board) WhoseMove() PieceColor {
	return b.whoseMove
}

// SetWhoseMove sets the side to move. Used when setting up positions.
func (b *Board) SetWhoseMove(c PieceColor) {
	if c.IsPiece() {
		b.whoseMove = c
	}
}

// PieceCount returns the number of pieces of color c on the board.
func (b *Board) PieceCount(c PieceColor) int {
	switch c {
	case Red:
		return b.redPieces
	case Blue:
		return b.bluePieces
	default:
		return 0
	}
}

// Jumps returns the current count of consecutive jumps.
func (b *Board) Jumps() int {
	return b.numJumps
}

// SetJumps sets the consecutive-jump counter. Used when reconstructing a
// position received over the wire.
func (b *Board) SetJumps(n int) {
	if n >= 0 {
		b.numJumps = n
	}
}

// Put places color c on the cell at (col, row), replacing whatever is
// there and updating piece counts. Used when setting up positions.
func (b *Board) Put(col, row byte, c PieceColor) {
	b.set(Index(col, row), c)
}

func (b *Board) set(sq int, c PieceColor) {
	switch b.cells[sq] {
	case Red:
		b.redPieces--
	case Blue:
		b.bluePieces--
	}
	b.cells[sq] = c
	switch c {
	case Red:
		b.redPieces++
	case Blue:
		b.bluePieces++
	}
}

// SetBlock marks (col, row) and its three reflections across the board's
// horizontal and vertical center lines as Blocked. Blocks may only be
// placed on empty cells.
func (b *Board) SetBlock(col, row byte) error {
	rcol := byte('a' + 'g' - col)
	rrow := byte('1' + '7' - row)
	if col < 'a' || col > 'g' || row < '1' || row > '7' {
		return fmt.Errorf("block %c%c out of range", col, row)
	}
	cells := []int{
		Index(col, row),
		Index(rcol, row),
		Index(col, rrow),
		Index(rcol, rrow),
	}
	for _, sq := range cells {
		if b.cells[sq] != Empty && b.cells[sq] != Blocked {
			return fmt.Errorf("cannot block occupied cell %c%c", col, row)
		}
	}
	for _, sq := range cells {
		b.set(sq, Blocked)
	}
	return nil
}

// LegalMove reports whether m is legal for the side to move. A pass is
// legal only when the side to move has no relocation move.
func (b *Board) LegalMove(m Move) bool {
	if m.IsPass() {
		return !b.CanMove(b.whoseMove)
	}
	if m.col0 < 'a' || m.col0 > 'g' || m.row0 < '1' || m.row0 > '7' ||
		m.col1 < 'a' || m.col1 > 'g' || m.row1 < '1' || m.row1 > '7' {
		return false
	}
	if !m.IsExtend() && !m.IsJump() {
		return false
	}
	return b.Get(Index(m.col0, m.row0)) == b.whoseMove &&
		b.Get(Index(m.col1, m.row1)) == Empty
}

// CanMove reports whether color c has any relocation move: a piece with an
// empty cell within the 5x5 window around it.
func (b *Board) CanMove(c PieceColor) bool {
	if !c.IsPiece() {
		return false
	}
	for i := 0; i < len(b.cells); i++ {
		if b.cells[i] != c {
			continue
		}
		for dc := -2; dc <= 2; dc++ {
			for dr := -2; dr <= 2; dr++ {
				if b.Get(Neighbor(i, dc, dr)) == Empty {
					return true
				}
			}
		}
	}
	return false
}

// MakeMove applies m for the side to move: places or jumps the piece,
// converts all adjacent enemy pieces, updates the jump counter, and flips
// the side to move. Illegal moves are rejected with an error and leave the
// board unchanged.
func (b *Board) MakeMove(m Move) error {
	if !b.LegalMove(m) {
		return fmt.Errorf("illegal move %s for %s", m, b.whoseMove)
	}
	mover := b.whoseMove
	if m.IsPass() {
		b.whoseMove = mover.Opposite()
		return nil
	}
	src := Index(m.col0, m.row0)
	dst := Index(m.col1, m.row1)
	if m.IsJump() {
		b.set(src, Empty)
		b.numJumps++
	} else {
		b.numJumps = 0
	}
	b.set(dst, mover)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			n := Neighbor(dst, dc, dr)
			if b.Get(n) == mover.Opposite() {
				b.set(n, mover)
			}
		}
	}
	b.whoseMove = mover.Opposite()
	return nil
}

// Winner returns the winning color and true if the game is decided, with
// Empty standing for a tie. The game is decided when a side has no pieces
// left, when neither side can move, or when JumpLimit consecutive jumps
// have been made; in the latter two cases the larger piece count wins.
func (b *Board) Winner() (PieceColor, bool) {
	switch {
	case b.redPieces == 0:
		return Blue, true
	case b.bluePieces == 0:
		return Red, true
	case b.numJumps >= JumpLimit, !b.CanMove(Red) && !b.CanMove(Blue):
		switch {
		case b.redPieces > b.bluePieces:
			return Red, true
		case b.bluePieces > b.redPieces:
			return Blue, true
		default:
			return Empty, true
		}
	}
	return Empty, false
}

// String renders the playable region, one row per line from row 7 down,
// with r/b for pieces, - for empty cells and X for blocks.
func (b *Board) String() string {
	var sb strings.Builder
	for r := byte('7'); r >= '1'; r-- {
		for c := byte('a'); c <= 'g'; c++ {
			if c > 'a' {
				sb.WriteByte(' ')
			}
			switch b.Get(Index(c, r)) {
			case Red:
				sb.WriteByte('r')
			case Blue:
				sb.WriteByte('b')
			case Blocked:
				sb.WriteByte('X')
			default:
				sb.WriteByte('-')
			}
		}
		if r > '1' {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
