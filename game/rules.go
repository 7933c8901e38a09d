package game

// The eight winning lines as 9-bit masks, bit i standing for cell i:
// three rows, three columns, two diagonals.
var lineMasks = [8]uint16{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

const fullMask = 0b111111111

// resultOf decides the terminal status from the two occupancy masks.
// A completed line wins; a full board with no line is a draw.
func resultOf(x, o uint16) Result {
	for _, mask := range lineMasks {
		if x&mask == mask {
			return XWins
		}
		if o&mask == mask {
			return OWins
		}
	}
	if x|o == fullMask {
		return Draw
	}
	return Ongoing
}

// playerOf derives the side to move from the occupancy masks: X and O
// alternate and X starts, so X is on move exactly when the counts are equal.
func playerOf(x, o uint16) Player {
	if popcount(x) == popcount(o) {
		return X
	}
	return O
}

// legalMovesOf lists the empty cells in ascending order. Note a won position
// still has empty cells; callers gate on Result for terminal detection.
func legalMovesOf(x, o uint16) []Cell {
	occupied := x | o
	moves := make([]Cell, 0, 9)
	for c := Cell(0); c < 9; c++ {
		if occupied&(1<<uint(c)) == 0 {
			moves = append(moves, c)
		}
	}
	return moves
}
