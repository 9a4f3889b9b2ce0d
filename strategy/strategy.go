package strategy

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/meta"
	"othello/searcher"
)

// Recognised strategy names.
const (
	Minimax    = "minimax"
	Expectimax = "expectimax"
	MCTS       = "mcts"
	Custom     = "custom"
)

// Evaluator names accepted by Params.Evaluator.
const (
	WeightedEvaluator = "weighted"
	PiecesEvaluator   = "pieces"
	NeuralEvaluator   = "neural"
)

var (
	ErrUnknownStrategy = errors.New("unknown strategy")
	ErrInvalidParams   = errors.New("invalid strategy parameters")
)

// Names lists every strategy New accepts.
func Names() []string { return []string{Minimax, Expectimax, MCTS, Custom} }

// IsKnown reports whether name is a recognised strategy.
func IsKnown(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Strategy picks moves for a computer-controlled player.
type Strategy interface {
	Name() string
	// ChooseMove returns the destination actor should play, or false when actor has no legal move.
	ChooseMove(g *game.Game, actor, opponent *game.Player) (game.Coord, bool)
	// Metrics describes the most recent decision.
	Metrics() searcher.SearchMetrics
}

// TreeKeeper is implemented by strategies that can hand out the tree of their last decision.
type TreeKeeper interface {
	LastTree() *searcher.Node[Ply]
}

// Params configures every strategy; each one reads the fields it needs.
type Params struct {
	Depth         int     `yaml:"depth"`
	Simulations   int     `yaml:"simulations"`
	RolloutCutoff int     `yaml:"rollout_cutoff"`
	Exploration   float64 `yaml:"exploration"`
	Seed          uint64  `yaml:"seed"`
	Evaluator     string  `yaml:"evaluator"`
	Model         string  `yaml:"model"`
	Hidden        []int   `yaml:"hidden"`
	KeepTree      bool    `yaml:"keep_tree"`
}

// DefaultParams returns the compiled-in defaults.
func DefaultParams() Params {
	return Params{
		Depth:         meta.DEPTH,
		Simulations:   meta.SIMULATIONS,
		RolloutCutoff: meta.ROLLOUT_CUTOFF,
		Exploration:   meta.EXPLORATION,
		Evaluator:     WeightedEvaluator,
		Hidden:        []int{64, 32},
	}
}

// Validate rejects parameters no strategy can run with.
func (p Params) Validate() error {
	if p.Depth <= 0 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidParams, p.Depth)
	}
	if p.Simulations <= 0 {
		return fmt.Errorf("%w: simulations must be positive, got %d", ErrInvalidParams, p.Simulations)
	}
	if p.RolloutCutoff <= 0 {
		return fmt.Errorf("%w: rollout cutoff must be positive, got %d", ErrInvalidParams, p.RolloutCutoff)
	}
	if p.Exploration < 0 {
		return fmt.Errorf("%w: exploration must not be negative, got %v", ErrInvalidParams, p.Exploration)
	}
	switch p.Evaluator {
	case WeightedEvaluator, PiecesEvaluator, NeuralEvaluator:
	default:
		return fmt.Errorf("%w: unknown evaluator %q", ErrInvalidParams, p.Evaluator)
	}
	for _, size := range p.Hidden {
		if size <= 0 {
			return fmt.Errorf("%w: hidden layer sizes must be positive, got %v", ErrInvalidParams, p.Hidden)
		}
	}
	return nil
}

// New builds the named strategy. Unknown names and bad parameters fail here,
// never at move time.
func New(name string, params Params) (Strategy, error) {
	if !IsKnown(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch name {
	case Minimax, Expectimax:
		evaluator, err := newEvaluator(params.Evaluator, params)
		if err != nil {
			return nil, err
		}
		return newTreeStrategy(name, params, evaluator), nil
	case MCTS:
		return newMCTSStrategy(params)
	default:
		evaluator, err := newEvaluator(NeuralEvaluator, params)
		if err != nil {
			return nil, err
		}
		return newCustomStrategy(evaluator), nil
	}
}
