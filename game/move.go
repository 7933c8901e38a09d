package game

import "fmt"

// Cell is a move: a board index 0-8, row-major from the top-left corner.
type Cell int

// NoCell marks the absence of a move, e.g. an empty killer-table slot.
const NoCell Cell = -1

func (c Cell) Valid() bool {
	return c >= 0 && c < 9
}

func (c Cell) String() string {
	return fmt.Sprintf("cell %d", int(c))
}

// InvalidMoveError reports a move on an occupied or out-of-range cell.
type InvalidMoveError struct {
	Cell Cell
	By   Player // occupant, or Nobody when the index is out of range
}

func (e InvalidMoveError) Error() string {
	if !e.Cell.Valid() {
		return fmt.Sprintf("invalid move: cell %d out of range", int(e.Cell))
	}
	return fmt.Sprintf("invalid move: cell %d already taken by %s", int(e.Cell), e.By)
}
