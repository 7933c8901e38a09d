package searcher

import (
	"math"

	"github.com/righthandabacus/tttai/game"
)

// Rewards backed up through the MCTS tree. A draw is worth half a win so
// the searcher still prefers drawing lines over losing ones.
const (
	win  = 1.0
	draw = 0.5
	loss = 0.0
)

// node is one position in the MCTS tree. Rewards are stored from the
// perspective of the player who made the move into the node, so a parent
// picking among children maximizes its own mover's outcome directly.
type node struct {
	parent   *node
	move     game.Cell   // move that led here; NoCell at the root
	player   game.Player // who made that move
	untried  []game.Cell // legal moves not yet expanded into children
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, move game.Cell, s game.State) *node {
	n := &node{
		parent: parent,
		move:   move,
		player: s.Player().Other(),
	}
	if !s.Result().Over() {
		n.untried = s.LegalMoves()
	}
	return n
}

// expandable reports whether the node still has unexpanded moves.
func (n *node) expandable() bool {
	return len(n.untried) > 0
}

// terminal reports whether the node's position has no continuation at all.
func (n *node) terminal() bool {
	return len(n.untried) == 0 && len(n.children) == 0
}

// expand instantiates the next untried move as a new child.
func (n *node) expand(s game.State) (*node, game.State) {
	move := n.untried[0]
	n.untried = n.untried[1:]
	childState := mustPlay(s, move)
	child := newNode(n, move, childState)
	n.children = append(n.children, child)
	return child, childState
}

// selectChild picks the child maximizing the UCT score
// winRate + c*sqrt(ln(parentVisits)/childVisits), ties going to the first
// child encountered (expansion order).
func (n *node) selectChild(c float64) *node {
	numerator := math.Log(float64(n.visits))
	var best *node
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		score := child.uct(c, numerator)
		if score > bestScore {
			bestScore, best = score, child
		}
	}
	return best
}

func (n *node) uct(c float64, lnParent float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	v := float64(n.visits)
	return n.rewards/v + c*math.Sqrt(lnParent/v)
}

func (n *node) winRate() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.rewards / float64(n.visits)
}

// backup walks from n to the root, crediting each node on the path with
// one visit and the rollout result seen from its own mover's side.
func (n *node) backup(winner game.Player) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		switch winner {
		case cur.player:
			cur.rewards += win
		case game.Nobody:
			cur.rewards += draw
		default:
			cur.rewards += loss
		}
	}
}

// bestChild applies the robust-child policy: the move with the most visits
// wins, not the highest win rate, since visit count tracks confidence.
func (n *node) bestChild() *node {
	var best *node
	bestVisits := -1
	for _, child := range n.children {
		if child.visits > bestVisits {
			bestVisits, best = child.visits, child
		}
	}
	return best
}
