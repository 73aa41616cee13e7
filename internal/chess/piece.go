package chess

// Piece is a coloured piece, or the empty marker when Kind is Empty.
// The zero value is NoPiece.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square marker.
var NoPiece = Piece{}

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, kind Kind) Piece {
	if kind == Empty {
		return NoPiece
	}
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakeColouredPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakeColouredPiece(Black, kind)
}

// IsEmpty reports whether p is the empty marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Belongs reports whether p is a piece of colour c. Empty squares belong to nobody.
func (p Piece) Belongs(c Colour) bool {
	return !p.IsEmpty() && p.Colour == c
}

// Letter returns the FEN letter: uppercase for white, lowercase for black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.IsEmpty() || p.Colour == White {
		return letter
	}
	return letter + ('a' - 'A')
}

// Glyph returns the Unicode chess symbol used when rendering the board.
func (p Piece) Glyph() string {
	if p.IsEmpty() {
		return "·"
	}
	white := [...]string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := [...]string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Kind < 0 || p.Kind >= NumKinds {
		return "?"
	}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// String returns a readable name such as "white Queen".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN letter (or '.') to a Piece.
func PieceFromLetter(c byte) (Piece, bool) {
	var kind Kind
	switch c {
	case '.':
		return NoPiece, true
	case 'K', 'k':
		kind = King
	case 'Q', 'q':
		kind = Queen
	case 'R', 'r':
		kind = Rook
	case 'B', 'b':
		kind = Bishop
	case 'N', 'n':
		kind = Knight
	case 'P', 'p':
		kind = Pawn
	default:
		return NoPiece, false
	}
	if c >= 'a' && c <= 'z' {
		return B(kind), true
	}
	return W(kind), true
}
