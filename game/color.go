package game

// PieceColor is the contents of one board cell. Red and Blue are the two
// players. Blocked marks border cells and placed blocks; it is permanently
// non-empty so move targets on it are rejected without special-casing.
type PieceColor int

const (
	Empty PieceColor = iota
	Red
	Blue
	Blocked
)

// Opposite returns the other playing color. Empty and Blocked map to
// themselves.
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return c
	}
}

// IsPiece reports whether c is one of the two playing colors.
func (c PieceColor) IsPiece() bool {
	return c == Red || c == Blue
}

func (c PieceColor) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Blocked:
		return "blocked"
	default:
		return "empty"
	}
}
