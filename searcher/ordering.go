package searcher

import (
	"sort"

	"github.com/righthandabacus/tttai/game"
)

// ordering reorders a node's candidate moves in place before the search
// loop runs them, and hears about beta cutoffs as they happen.
type ordering interface {
	reset()
	order(s game.State, moves []game.Cell, depth int)
	cutoff(move game.Cell, depth int)
}

// naturalOrder keeps the enumeration (ascending cell index) order.
type naturalOrder struct{}

func (naturalOrder) reset()                             {}
func (naturalOrder) order(game.State, []game.Cell, int) {}
func (naturalOrder) cutoff(game.Cell, int)              {}

// killerTable remembers, per depth, the move that most recently caused a
// beta cutoff there and tries it first in sibling nodes. One slot per
// depth, overwritten on each cutoff; the table lives for exactly one
// top-level search.
type killerTable struct {
	slots [9]game.Cell
}

func newKillerTable() *killerTable {
	t := &killerTable{}
	t.reset()
	return t
}

func (t *killerTable) reset() {
	for i := range t.slots {
		t.slots[i] = game.NoCell
	}
}

func (t *killerTable) at(depth int) game.Cell {
	if depth < 0 || depth >= len(t.slots) {
		return game.NoCell
	}
	return t.slots[depth]
}

func (t *killerTable) order(_ game.State, moves []game.Cell, depth int) {
	killer := t.at(depth)
	if killer == game.NoCell {
		return
	}
	for i, mv := range moves {
		if mv == killer {
			moves[0], moves[i] = killer, moves[0]
			break
		}
	}
}

func (t *killerTable) cutoff(move game.Cell, depth int) {
	if depth >= 0 && depth < len(t.slots) {
		t.slots[depth] = move
	}
}

// heuristicOrder presorts children by the open-line heuristic, best first
// from the mover's view, then lets the wrapped policy pull its killer to
// the front. Purely a node-count optimization; the backed-up values do not
// depend on move order.
type heuristicOrder struct {
	next ordering
}

func (h heuristicOrder) reset() {
	h.next.reset()
}

func (h heuristicOrder) order(s game.State, moves []game.Cell, depth int) {
	pov := s.Player()
	scores := make(map[game.Cell]int, len(moves))
	for _, mv := range moves {
		scores[mv] = game.HeuristicScore(mustPlay(s, mv), pov)
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return scores[moves[i]] > scores[moves[j]]
	})
	h.next.order(s, moves, depth)
}

func (h heuristicOrder) cutoff(move game.Cell, depth int) {
	h.next.cutoff(move, depth)
}
