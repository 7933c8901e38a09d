package game

// State is an immutable tic-tac-toe position. Operations on a State never
// mutate it; Play returns a fresh value, so prior states stay valid while a
// search backtracks. Board and Bitboard are the two interchangeable
// implementations.
type State interface {
	// Player is the side to move. X moves first on an empty board.
	Player() Player
	// LegalMoves lists every empty cell in ascending cell order.
	LegalMoves() []Cell
	// Play places the mover's mark on the given cell. It returns an
	// InvalidMoveError if the cell is occupied or out of range.
	Play(Cell) (State, error)
	// Result reports whether the game is over and who won.
	Result() Result
	// Key packs the position into 18 bits (X mask | O mask << 9). Two states
	// have the same key iff they are the same position.
	Key() uint32
}
