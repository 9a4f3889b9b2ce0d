package searcher

import "math"

// Expectimax searches node to depth plies. Maximizing plies take the best
// child; the other plies are chance plies whose value is the unweighted mean
// of every child, so nothing is pruned. A node without children is evaluated
// directly.
func Expectimax[T any](node *Node[T], depth int, maximizing bool, evaluate Evaluate[T]) float64 {
	if depth == 0 || node.IsLeaf() {
		node.Score = evaluate(node.Data, maximizing)
		return node.Score
	}

	if maximizing {
		best := math.Inf(-1)
		for _, child := range node.children {
			best = math.Max(best, Expectimax(child, depth-1, false, evaluate))
		}
		node.Score = best
		return best
	}

	// Chance ply: each child equally likely
	sum := 0.0
	for _, child := range node.children {
		sum += Expectimax(child, depth-1, true, evaluate)
	}
	node.Score = sum / float64(len(node.children))
	return node.Score
}
