package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// leafValue evaluates int payloads as their own score.
func leafValue(evaluations *int) Evaluate[int] {
	return func(data int, maximizing bool) float64 {
		*evaluations++
		return float64(data)
	}
}

// plainMinimax is minimax without pruning, used as the reference value.
func plainMinimax(node *Node[int], depth int, maximizing bool) float64 {
	if depth == 0 || node.IsLeaf() {
		return float64(node.Data)
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, child := range node.Children() {
		score := plainMinimax(child, depth-1, !maximizing)
		if maximizing {
			best = math.Max(best, score)
		} else {
			best = math.Min(best, score)
		}
	}
	return best
}

func randomTree(rng *rand.Rand, depth int) *Node[int] {
	node := NewNode(rng.Intn(201) - 100)
	if depth == 0 {
		return node
	}
	for i := rng.Intn(5); i > 0; i-- {
		node.AddChild(randomTree(rng, depth-1))
	}
	return node
}

func walk(node *Node[int], fn func(*Node[int])) {
	fn(node)
	for _, child := range node.Children() {
		walk(child, fn)
	}
}

// textbookTree builds the 3x3 tree whose min children hold {3,12,8}, {2,4,6} and {14,5,2}.
func textbookTree() (*Node[int], [][]*Node[int]) {
	root := NewNode(0)
	leaves := [][]*Node[int]{}
	for _, values := range [][]int{{3, 12, 8}, {2, 4, 6}, {14, 5, 2}} {
		child := root.Add(0)
		row := []*Node[int]{}
		for _, v := range values {
			row = append(row, child.Add(v))
		}
		leaves = append(leaves, row)
	}
	return root, leaves
}

func TestMinimax(t *testing.T) {
	t.Run("textbook tree with beta cutoff", func(t *testing.T) {
		root, leaves := textbookTree()
		for _, row := range leaves {
			for _, leaf := range row {
				leaf.Score = -1 // sentinel for unexplored leaves
			}
		}
		evaluations := 0

		got := Minimax(root, 2, true, math.Inf(-1), math.Inf(1), leafValue(&evaluations))

		require.Equal(t, 3.0, got)
		require.Equal(t, 3.0, root.Score)
		require.Equal(t, []float64{3, 2, 2}, []float64{root.Children()[0].Score, root.Children()[1].Score, root.Children()[2].Score})
		require.Equal(t, 7, evaluations, "Leaves 4 and 6 should be pruned")
		require.Equal(t, -1.0, leaves[1][1].Score, "Pruned leaves should keep their score")
		require.Equal(t, -1.0, leaves[1][2].Score, "Pruned leaves should keep their score")
		require.Equal(t, root.Children()[0], BestChild(root))
	})

	t.Run("depth zero evaluates the node itself", func(t *testing.T) {
		root, _ := textbookTree()
		root.Data = 42
		evaluations := 0

		got := Minimax(root, 0, true, math.Inf(-1), math.Inf(1), leafValue(&evaluations))

		require.Equal(t, 42.0, got)
		require.Equal(t, 1, evaluations)
	})

	t.Run("depth cut passes the ply kind to the evaluator", func(t *testing.T) {
		root, _ := textbookTree()
		var plies []bool
		evaluate := func(data int, maximizing bool) float64 {
			plies = append(plies, maximizing)
			return 1
		}

		Minimax(root, 1, true, math.Inf(-1), math.Inf(1), evaluate)

		require.NotEmpty(t, plies)
		for _, maximizing := range plies {
			require.False(t, maximizing, "Children of a max node sit on a min ply")
		}
	})

	t.Run("ties keep the first child", func(t *testing.T) {
		root := NewNode(0)
		first := root.Add(5)
		root.Add(5)
		root.Add(1)
		evaluations := 0

		Minimax(root, 1, true, math.Inf(-1), math.Inf(1), leafValue(&evaluations))

		require.Equal(t, first, BestChild(root))
	})

	t.Run("leaf has no best child", func(t *testing.T) {
		require.Nil(t, BestChild(NewNode(0)))
	})
}

func TestMinimaxMatchesUnprunedSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		root := randomTree(rng, 5)
		walk(root, func(node *Node[int]) {
			for _, maximizing := range []bool{true, false} {
				evaluations := 0
				want := plainMinimax(node, 5, maximizing)
				got := Minimax(node, 5, maximizing, math.Inf(-1), math.Inf(1), leafValue(&evaluations))
				require.Equal(t, want, got, "Pruning must never change the value of a search root")
			}
		})
	}
}
