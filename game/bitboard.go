package game

import "math/bits"

// Bitboard is the packed encoding: one 9-bit occupancy mask per side, bit i
// standing for cell i. It exists purely as a performance variant of Board
// and is value-equivalent to it under round-trip conversion.
type Bitboard struct {
	x, o uint16
}

// NewBitboard returns the empty board.
func NewBitboard() Bitboard {
	return Bitboard{}
}

// FromBoard packs an array board into its bitboard form.
func FromBoard(b Board) Bitboard {
	x, o := b.masks()
	return Bitboard{x: x, o: o}
}

// Board unpacks the bitboard back into the array form.
func (bb Bitboard) Board() Board {
	var b Board
	for c := 0; c < 9; c++ {
		switch {
		case bb.x&(1<<uint(c)) != 0:
			b.cells[c] = X
		case bb.o&(1<<uint(c)) != 0:
			b.cells[c] = O
		}
	}
	return b
}

// Mark is the occupant of a cell, or Nobody.
func (bb Bitboard) Mark(c Cell) Player {
	if !c.Valid() {
		return Nobody
	}
	switch {
	case bb.x&(1<<uint(c)) != 0:
		return X
	case bb.o&(1<<uint(c)) != 0:
		return O
	}
	return Nobody
}

func (bb Bitboard) Player() Player {
	return playerOf(bb.x, bb.o)
}

func (bb Bitboard) LegalMoves() []Cell {
	return legalMovesOf(bb.x, bb.o)
}

func (bb Bitboard) Play(c Cell) (State, error) {
	if !c.Valid() {
		return nil, InvalidMoveError{Cell: c}
	}
	mask := uint16(1) << uint(c)
	if (bb.x|bb.o)&mask != 0 {
		return nil, InvalidMoveError{Cell: c, By: bb.Mark(c)}
	}
	next := bb
	if bb.Player() == X {
		next.x |= mask
	} else {
		next.o |= mask
	}
	return next, nil
}

func (bb Bitboard) Result() Result {
	return resultOf(bb.x, bb.o)
}

func (bb Bitboard) Key() uint32 {
	return uint32(bb.x) | uint32(bb.o)<<9
}

// Spaces counts the empty cells left.
func (bb Bitboard) Spaces() int {
	return 9 - popcount(bb.x|bb.o)
}

func (bb Bitboard) String() string {
	return bb.Board().String()
}

func popcount(m uint16) int {
	return bits.OnesCount16(m)
}
