package chess

// Square addresses one cell of the board. Row 0 is rank 8, column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the lowercase file letter ('a'-'h').
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the square label, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Board is an 8x8 grid of pieces, indexed [row][col].
// Board is a value type: assigning or passing it copies all 64 cells,
// so a Board held by one caller never changes under another.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard chess starting position.
func InitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
	return b
}

// Get returns the piece at sq, or NoPiece if sq is off the board.
func (b Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// With returns a copy of the board with piece placed at sq.
func (b Board) With(sq Square, piece Piece) Board {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
	return b
}

// Count returns the number of pieces of the given colour.
func (b Board) Count(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Belongs(colour) {
				n++
			}
		}
	}
	return n
}
