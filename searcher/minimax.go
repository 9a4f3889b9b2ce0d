package searcher

import "math"

// Minimax searches node to depth plies with alpha-beta pruning and records
// the value on every explored node. Children are explored in insertion
// order; once beta <= alpha the remaining siblings are skipped and keep
// whatever score they had. Ties keep the first child reaching the extremum.
func Minimax[T any](node *Node[T], depth int, maximizing bool, alpha, beta float64, evaluate Evaluate[T]) float64 {
	if depth == 0 || node.IsLeaf() {
		node.Score = evaluate(node.Data, maximizing)
		return node.Score
	}

	var best float64
	if maximizing {
		best = math.Inf(-1)
		for _, child := range node.children {
			score := Minimax(child, depth-1, false, alpha, beta, evaluate)
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break // Beta cutoff
			}
		}
	} else {
		best = math.Inf(1)
		for _, child := range node.children {
			score := Minimax(child, depth-1, true, alpha, beta, evaluate)
			best = math.Min(best, score)
			beta = math.Min(beta, score)
			if beta <= alpha {
				break // Alpha cutoff
			}
		}
	}

	node.Score = best
	node.Alpha = alpha
	node.Beta = beta
	return best
}

// BestChild returns the first child holding the highest score, or nil for a leaf.
func BestChild[T any](node *Node[T]) *Node[T] {
	var best *Node[T]
	for _, child := range node.children {
		if best == nil || child.Score > best.Score {
			best = child
		}
	}
	return best
}
