package searcher

import "math"

// Node is a search tree node over an opaque payload. It owns its children;
// the parent link is only used to walk back up during backpropagation.
type Node[T any] struct {
	Data T

	// Minimax and expectimax
	Score float64
	Alpha float64
	Beta  float64

	// MCTS
	visits  int
	rewards float64

	parent   *Node[T]
	children []*Node[T]
}

// NewNode creates a detached node with an unbounded alpha-beta window.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{
		Data:  data,
		Alpha: math.Inf(-1),
		Beta:  math.Inf(1),
	}
}

// AddChild attaches child below n and returns it.
func (n *Node[T]) AddChild(child *Node[T]) *Node[T] {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Add creates a child holding data.
func (n *Node[T]) Add(data T) *Node[T] {
	return n.AddChild(NewNode(data))
}

func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Children returns the children in insertion order.
func (n *Node[T]) Children() []*Node[T] { return n.children }

func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

func (n *Node[T]) Visits() int { return n.visits }

func (n *Node[T]) Rewards() float64 { return n.rewards }

// Update records one more visit crediting reward.
func (n *Node[T]) Update(reward float64) {
	n.visits++
	n.rewards += reward
}

// UCB1 is the mean reward plus c * sqrt(ln(parent visits) / visits).
// Unvisited nodes score +Inf.
func (n *Node[T]) UCB1(c float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	if n.parent == nil {
		return n.rewards / float64(n.visits)
	}
	return ucb1(n.rewards, n.visits, math.Log(float64(n.parent.visits)), c)
}

// Size counts n and all of its descendants.
func (n *Node[T]) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}
