package game

// Piece is a single die. Pieces are values and never change once built.
type Piece struct {
	Category  Category
	BaseValue int // always Config(Category).BaseValue for well-formed pieces
}

func NewPiece(c Category) Piece {
	return Piece{Category: c, BaseValue: Config(c).BaseValue}
}

func (p Piece) String() string {
	return p.Category.String()
}
