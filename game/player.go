package game

// Player identifies a side. The zero value means no side (empty cell,
// drawn game).
type Player uint8

const (
	Nobody Player = iota
	X
	O
)

func (p Player) Other() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	return Nobody
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Result is the terminal status of a position.
type Result uint8

const (
	Ongoing Result = iota
	XWins
	OWins
	Draw
)

// Over reports whether the game has ended, by win or draw.
func (r Result) Over() bool {
	return r != Ongoing
}

// Winner is the winning side, or Nobody for a draw or an ongoing game.
func (r Result) Winner() Player {
	switch r {
	case XWins:
		return X
	case OWins:
		return O
	}
	return Nobody
}

func (r Result) String() string {
	switch r {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	}
	return "ongoing"
}
