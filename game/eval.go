package game

// Score is the terminal evaluation from pov's perspective: +1 for a win,
// -1 for a loss, 0 for a draw or an ongoing position. The full game tree is
// small enough to search to completion, so no leaf heuristic is needed for
// correctness.
func Score(s State, pov Player) int {
	switch s.Result().Winner() {
	case pov:
		return 1
	case pov.Other():
		return -1
	}
	return 0
}

// HeuristicScore rates a non-terminal position for pov by the open lines
// each side still threatens: a line holding n of one side's marks and none
// of the other's contributes 10^(n-1), positive for pov's lines and negative
// for the opponent's. Used only as a move-ordering hint for the pruning
// searchers; it never feeds back into returned values.
func HeuristicScore(s State, pov Player) int {
	key := s.Key()
	x := uint16(key & fullMask)
	o := uint16(key >> 9)
	score := 0
	for _, mask := range lineMasks {
		cx := popcount(x & mask)
		co := popcount(o & mask)
		switch {
		case co == 0 && cx > 0:
			score += pow10(cx - 1)
		case cx == 0 && co > 0:
			score -= pow10(co - 1)
		}
	}
	if pov == O {
		return -score
	}
	return score
}

func pow10(n int) int {
	v := 1
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}
