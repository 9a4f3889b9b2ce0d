package strategy

import (
	"math"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

type treeSearch func(root *searcher.Node[Ply], depth int, evaluate searcher.Evaluate[Ply]) float64

// treeStrategy serves minimax and expectimax: both grow the full tree to the
// configured depth and score its leaves from the searching player's side.
type treeStrategy struct {
	name      string
	depth     int
	keepTree  bool
	evaluator game.Evaluator
	search    treeSearch
	metrics   searcher.MetricsCollector
	last      searcher.SearchMetrics
	tree      *searcher.Node[Ply]
}

func newTreeStrategy(name string, params Params, evaluator game.Evaluator) *treeStrategy {
	s := &treeStrategy{
		name:      name,
		depth:     params.Depth,
		keepTree:  params.KeepTree,
		evaluator: evaluator,
		metrics:   searcher.NewMetricsCollector(),
	}
	if name == Expectimax {
		s.search = func(root *searcher.Node[Ply], depth int, evaluate searcher.Evaluate[Ply]) float64 {
			return searcher.Expectimax(root, depth, true, evaluate)
		}
	} else {
		s.search = func(root *searcher.Node[Ply], depth int, evaluate searcher.Evaluate[Ply]) float64 {
			return searcher.Minimax(root, depth, true, math.Inf(-1), math.Inf(1), evaluate)
		}
	}
	return s
}

func (s *treeStrategy) Name() string { return s.name }

func (s *treeStrategy) Metrics() searcher.SearchMetrics { return s.last }

func (s *treeStrategy) LastTree() *searcher.Node[Ply] { return s.tree }

func (s *treeStrategy) ChooseMove(g *game.Game, actor, opponent *game.Player) (game.Coord, bool) {
	if !g.Board.HasMoves(actor.Color) {
		return game.Coord{}, false
	}

	s.metrics.Start()
	root := newRoot(g, actor, opponent)
	s.metrics.AddNodes(len(root.Children()) + grow(root, s.depth))

	evaluate := func(p Ply, maximizing bool) float64 {
		s.metrics.AddEvaluation()
		return s.evaluator.Evaluate(p.State.Board(), actor.Color, opponent.Color)
	}
	value := s.search(root, s.depth, evaluate)
	best := searcher.BestChild(root)

	s.last = s.metrics.Complete()
	if s.keepTree {
		s.tree = root
	}
	log.Debug().Msgf("%s chose %v for %v: value %.3f over %d nodes, %d evaluations",
		s.name, best.Data.Move, actor, value, s.last.Nodes, s.last.Evaluations)
	return best.Data.Move, true
}
