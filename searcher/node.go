package searcher

import (
	"fmt"
	"sync"

	"aiplay/game"
)

// node is a decision node of the search tree. Rewards are kept from the
// perspective of the player who moved into the node, so a parent always
// picks the child with the highest score.
type node[A comparable] struct {
	sync.RWMutex
	parent     *node[A]
	mover      bool // Whether the maximizer moved into this node
	maximizing bool // Whether the maximizer is to move at this node
	unexplored []A
	explored   []A
	children   []*node[A]
	rewards    float64
	visits     float64
}

func newNode[A comparable](parent *node[A], state game.State[A]) *node[A] {
	var unexplored []A
	if !state.Terminal() {
		unexplored = state.Actions()
	}
	mover := false
	if parent != nil {
		mover = parent.maximizing
	}
	return &node[A]{
		parent:     parent,
		mover:      mover,
		maximizing: state.Maximizing(),
		unexplored: unexplored,
		explored:   make([]A, 0, len(unexplored)),
		children:   make([]*node[A], 0, len(unexplored)),
	}
}

// selectOrExpand moves one step down the tree. It expands the next unexplored
// action if there is one, otherwise selects the child with the best UCT
// score. The chosen child carries a virtual loss until backup. A terminal
// node returns itself.
func (n *node[A]) selectOrExpand(state game.State[A], cSquared float64) (child *node[A], childState game.State[A], selected bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.unexplored) == 0 && len(n.children) == 0 { // Terminal node
		return n, state, false
	}

	if len(n.unexplored) > 0 { // Expandable node
		action := n.unexplored[0]
		n.unexplored = n.unexplored[1:]
		childState = play(state, action)
		child = newNode(n, childState)
		n.explored = append(n.explored, action)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := n.pickChild(cSquared)
	child = n.children[ith]
	child.applyLoss()
	return child, play(state, n.explored[ith]), true
}

// pickChild returns the index of the child with the highest UCT score. The
// parent count is the sum of the children's visits, which includes virtual
// losses of episodes still in flight.
func (n *node[A]) pickChild(cSquared float64) int {
	stats := make([][2]float64, len(n.children))
	total := 0.0
	for i, child := range n.children {
		rewards, visits := child.stats()
		stats[i] = [2]float64{rewards, visits}
		total += visits
	}

	policy := newUCT(cSquared, total)
	best := 0
	bestScore := policy.score(stats[0][0], stats[0][1])
	for i := 1; i < len(stats); i++ {
		if score := policy.score(stats[i][0], stats[i][1]); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func (n *node[A]) stats() (rewards float64, visits float64) {
	n.RLock()
	defer n.RUnlock()

	return n.rewards, n.visits
}

func (n *node[A]) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node[A]) reverseLoss() {
	n.rewards -= Loss
	n.visits--
}

// backup records the outcome of an episode, given as a utility from the
// maximizer's perspective, and returns the parent.
func (n *node[A]) backup(utility float64) *node[A] {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.reverseLoss()
	}

	if n.mover {
		n.rewards += utility
	} else {
		n.rewards -= utility
	}
	n.visits++

	return n.parent
}

// choices reports the statistics of every explored action, in expansion order.
func (n *node[A]) choices() []Choice[A] {
	n.RLock()
	defer n.RUnlock()

	choices := make([]Choice[A], len(n.children))
	for i, child := range n.children {
		rewards, visits := child.stats()
		value := 0.0
		if visits > 0 {
			value = rewards / visits
		}
		choices[i] = Choice[A]{Action: n.explored[i], Visits: visits, Value: value}
	}
	return choices
}

func play[A comparable](state game.State[A], action A) game.State[A] {
	next, err := state.Play(action)
	if err != nil {
		panic(fmt.Sprintf("legal action %v failed: %v", action, err))
	}
	return next
}
