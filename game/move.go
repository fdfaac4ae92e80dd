package game

import "fmt"

// Move is a pure value: either a pass or a relocation from (Col0, Row0) to
// (Col1, Row1). Columns are 'a'..'g', rows '1'..'7'. A move carries no
// evaluation state.
type Move struct {
	col0, row0 byte
	col1, row1 byte
	pass       bool
}

// Pass returns the pass move. A pass is legal only when the side to move
// has no other legal move.
func Pass() Move {
	return Move{pass: true}
}

// NewMove returns a relocation move. The coordinates are not validated
// here; legality is owned by Board.LegalMove.
func NewMove(col0, row0, col1, row1 byte) Move {
	return Move{col0: col0, row0: row0, col1: col1, row1: row1}
}

// ParseMove parses the textual form of a move: a 4-character coordinate
// pair such as "a1b2" (an optional '-' separator is accepted, "a1-b2"),
// or a single dash for a pass.
func ParseMove(s string) (Move, error) {
	if s == "-" {
		return Pass(), nil
	}
	if len(s) == 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return Move{}, fmt.Errorf("malformed move %q", s)
	}
	m := NewMove(s[0], s[1], s[2], s[3])
	for _, c := range []byte{m.col0, m.col1} {
		if c < 'a' || c > 'g' {
			return Move{}, fmt.Errorf("column out of range in move %q", s)
		}
	}
	for _, r := range []byte{m.row0, m.row1} {
		if r < '1' || r > '7' {
			return Move{}, fmt.Errorf("row out of range in move %q", s)
		}
	}
	return m, nil
}

// IsPass reports whether m is the pass move.
func (m Move) IsPass() bool {
	return m.pass
}

// Col0 returns the source column of a non-pass move.
func (m Move) Col0() byte { return m.col0 }

// Row0 returns the source row of a non-pass move.
func (m Move) Row0() byte { return m.row0 }

// Col1 returns the destination column of a non-pass move.
func (m Move) Col1() byte { return m.col1 }

// Row1 returns the destination row of a non-pass move.
func (m Move) Row1() byte { return m.row1 }

// IsExtend reports whether m moves to an adjacent cell, which grows a new
// piece at the destination.
func (m Move) IsExtend() bool {
	return !m.pass && distance(m) == 1
}

// IsJump reports whether m relocates the piece two cells away, which
// vacates the source.
func (m Move) IsJump() bool {
	return !m.pass && distance(m) == 2
}

func distance(m Move) int {
	dc := abs(int(m.col1) - int(m.col0))
	dr := abs(int(m.row1) - int(m.row0))
	if dc > dr {
		return dc
	}
	return dr
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (m Move) String() string {
	if m.pass {
		return "-"
	}
	return fmt.Sprintf("%c%c%c%c", m.col0, m.row0, m.col1, m.row1)
}
