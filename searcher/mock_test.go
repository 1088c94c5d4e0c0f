package searcher

import (
	"errors"
	"fmt"

	"aiplay/game"
)

type mockMove struct {
	id int
}

// mockState records the moves played on it.
type mockState struct {
	maximizing bool
	terminal   bool
	moves      []mockMove
	played     []mockMove
}

func (m mockState) Actions() []mockMove {
	return m.moves
}

func (m mockState) Play(move mockMove) (game.State[mockMove], error) {
	played := append(append([]mockMove{}, m.played...), move)
	return mockState{maximizing: !m.maximizing, moves: m.moves, played: played}, nil
}

func (m mockState) Terminal() bool {
	return m.terminal
}

func (m mockState) Utility() float64 {
	return 0
}

func (m mockState) Maximizing() bool {
	return m.maximizing
}

// nim is a pile of stones; each turn a player takes one or two and whoever
// takes the last stone wins. Piles that are a multiple of three lose for the
// player to move.
type nim struct {
	pile       int
	maximizing bool
}

var errTooMany = errors.New("not enough stones")

func (n nim) Actions() []int {
	if n.pile >= 2 {
		return []int{1, 2}
	}
	if n.pile == 1 {
		return []int{1}
	}
	return nil
}

func (n nim) Play(take int) (game.State[int], error) {
	if take < 1 || take > 2 || take > n.pile {
		return nil, fmt.Errorf("take %d of %d: %w", take, n.pile, errTooMany)
	}
	return nim{pile: n.pile - take, maximizing: !n.maximizing}, nil
}

func (n nim) Terminal() bool {
	return n.pile == 0
}

// Utility credits whoever took the last stone, i.e. the player not to move.
func (n nim) Utility() float64 {
	if n.pile > 0 {
		return 0
	}
	if n.maximizing {
		return -1
	}
	return 1
}

func (n nim) Maximizing() bool {
	return n.maximizing
}

// tree is a hand-built game tree with fixed leaf utilities.
type tree struct {
	children   []tree
	value      float64
	maximizing bool
}

func (t tree) Actions() []int {
	actions := make([]int, len(t.children))
	for i := range t.children {
		actions[i] = i
	}
	return actions
}

func (t tree) Play(i int) (game.State[int], error) {
	return t.children[i], nil
}

func (t tree) Terminal() bool {
	return len(t.children) == 0
}

func (t tree) Utility() float64 {
	return t.value
}

func (t tree) Maximizing() bool {
	return t.maximizing
}

func leaf(v float64) tree {
	return tree{value: v}
}

func minNode(children ...tree) tree {
	return tree{children: children}
}

func maxNode(children ...tree) tree {
	return tree{children: children, maximizing: true}
}
