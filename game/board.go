package game

import "strings"

// Board is the array-of-cells encoding: one mark per cell, row-major. The
// zero value is the empty board with X to move.
type Board struct {
	cells [9]Player
}

// NewBoard returns the empty board.
func NewBoard() Board {
	return Board{}
}

// BoardFrom builds a position from the cells each side has taken. It rejects
// overlapping cells and mark counts that no legal game can reach.
func BoardFrom(xs, os []Cell) (Board, error) {
	var b Board
	for _, c := range xs {
		if !c.Valid() || b.cells[c] != Nobody {
			return Board{}, InvalidMoveError{Cell: c, By: b.Mark(c)}
		}
		b.cells[c] = X
	}
	for _, c := range os {
		if !c.Valid() || b.cells[c] != Nobody {
			return Board{}, InvalidMoveError{Cell: c, By: b.Mark(c)}
		}
		b.cells[c] = O
	}
	if d := len(xs) - len(os); d < 0 || d > 1 {
		return Board{}, InvalidMoveError{Cell: NoCell}
	}
	return b, nil
}

// Mark is the occupant of a cell, or Nobody.
func (b Board) Mark(c Cell) Player {
	if !c.Valid() {
		return Nobody
	}
	return b.cells[c]
}

func (b Board) masks() (x, o uint16) {
	for i, p := range b.cells {
		switch p {
		case X:
			x |= 1 << uint(i)
		case O:
			o |= 1 << uint(i)
		}
	}
	return x, o
}

func (b Board) Player() Player {
	return playerOf(b.masks())
}

func (b Board) LegalMoves() []Cell {
	return legalMovesOf(b.masks())
}

// Play returns a new board with the mover's mark on c. The receiver is
// untouched, so search frames can keep it for backtracking.
func (b Board) Play(c Cell) (State, error) {
	if !c.Valid() || b.cells[c] != Nobody {
		return nil, InvalidMoveError{Cell: c, By: b.Mark(c)}
	}
	next := b
	next.cells[c] = b.Player()
	return next, nil
}

func (b Board) Result() Result {
	return resultOf(b.masks())
}

func (b Board) Key() uint32 {
	x, o := b.masks()
	return uint32(x) | uint32(o)<<9
}

// String renders the grid in the classic three-row ASCII form:
//
//	 X | O |
//	---+---+---
//	   | X |
//	---+---+---
//	 O |   |
func (b Board) String() string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		rows[r] = " " + b.cells[3*r].String() +
			" | " + b.cells[3*r+1].String() +
			" | " + b.cells[3*r+2].String()
	}
	return strings.Join(rows, "\n---+---+---\n")
}
