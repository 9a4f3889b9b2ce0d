package strategy

import (
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// playout plays random games on snapshots for the tree search.
type playout struct {
	cutoff int
}

func (p playout) Continuations(ply Ply) []Ply { return continuations(ply) }

// Simulate plays uniformly random moves until the game ends or cutoff
// placements have been made. Passes do not count towards the cutoff.
func (p playout) Simulate(ply Ply, rng *rand.Rand) (Ply, bool) {
	state := ply.State
	for placed := 0; ; {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			swapped := state.Swap()
			if !swapped.Board().HasMoves(swapped.Mover().Color) {
				return Ply{State: state}, true
			}
			state = swapped
			continue
		}
		if placed == p.cutoff {
			return Ply{State: state}, false
		}
		dests := moves.Destinations()
		state = state.Play(dests[rng.Intn(len(dests))])
		placed++
	}
}

// Reward scores final for the player who moved into perspective. Cut-off
// playouts are judged on the pieces they ended with.
func (p playout) Reward(final, perspective Ply) float64 {
	return final.State.Outcome(perspective.State.Opponent().Color)
}

type mctsStrategy struct {
	search   *searcher.MCTS[Ply]
	keepTree bool
	metrics  searcher.MetricsCollector
	last     searcher.SearchMetrics
	tree     *searcher.Node[Ply]
}

func newMCTSStrategy(params Params) (*mctsStrategy, error) {
	collector := searcher.NewMetricsCollector()
	search, err := searcher.NewMCTS[Ply](
		playout{cutoff: params.RolloutCutoff},
		searcher.WithSimulations(params.Simulations),
		searcher.WithExploration(params.Exploration),
		searcher.WithSeed(params.Seed),
		searcher.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}
	return &mctsStrategy{search: search, keepTree: params.KeepTree, metrics: collector}, nil
}

func (s *mctsStrategy) Name() string { return MCTS }

func (s *mctsStrategy) Metrics() searcher.SearchMetrics { return s.last }

func (s *mctsStrategy) LastTree() *searcher.Node[Ply] { return s.tree }

func (s *mctsStrategy) ChooseMove(g *game.Game, actor, opponent *game.Player) (game.Coord, bool) {
	if !g.Board.HasMoves(actor.Color) {
		return game.Coord{}, false
	}

	s.metrics.Start()
	root := newRoot(g, actor, opponent)
	s.metrics.AddNodes(len(root.Children()))
	best := s.search.Search(root)
	s.last = s.metrics.Complete()
	if best == nil {
		panic("mcts search returned no child for a position with legal moves")
	}
	if s.keepTree {
		s.tree = root
	}
	log.Debug().Msgf("mcts chose %v for %v: %d/%d visits, %.3f win rate",
		best.Data.Move, actor, best.Visits(), root.Visits(), best.Rewards()/float64(best.Visits()))
	return best.Data.Move, true
}
