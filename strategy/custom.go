package strategy

import (
	"othello/game"
	"othello/neural"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// customStrategy looks one ply ahead: every legal move is scored by the
// evaluator from the mover's side, the scores are turned into a
// distribution and the most likely move is played.
type customStrategy struct {
	evaluator game.Evaluator
	metrics   searcher.MetricsCollector
	last      searcher.SearchMetrics
}

func newCustomStrategy(evaluator game.Evaluator) *customStrategy {
	return &customStrategy{evaluator: evaluator, metrics: searcher.NewMetricsCollector()}
}

func (s *customStrategy) Name() string { return Custom }

func (s *customStrategy) Metrics() searcher.SearchMetrics { return s.last }

func (s *customStrategy) ChooseMove(g *game.Game, actor, opponent *game.Player) (game.Coord, bool) {
	state := g.State(actor)
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Coord{}, false
	}

	s.metrics.Start()
	dests := moves.Destinations()
	scores := make([]float64, len(dests))
	for i, dest := range dests {
		next := state.Play(dest)
		scores[i] = s.evaluator.Evaluate(next.Board(), actor.Color, opponent.Color)
		s.metrics.AddEvaluation()
	}
	s.metrics.AddNodes(len(dests))

	outputs := make([]float64, game.Size*game.Size)
	for i, p := range neural.Softmax(scores) {
		outputs[dests[i].Row*game.Size+dests[i].Col] = p
	}
	best, _ := neural.BestMove(outputs, moves)

	s.last = s.metrics.Complete()
	log.Debug().Msgf("custom chose %v for %v with probability %.3f", best, actor, outputs[best.Row*game.Size+best.Col])
	return best, true
}
