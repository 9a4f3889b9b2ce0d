package strategy

import (
	"fmt"
	"othello/game"
	"othello/neural"
)

func newEvaluator(name string, params Params) (game.Evaluator, error) {
	switch name {
	case WeightedEvaluator:
		return game.NewWeightedEvaluator(), nil
	case PiecesEvaluator:
		return game.EvaluatorFunc(game.EvaluatePieces), nil
	case NeuralEvaluator:
		if params.Model != "" {
			network, err := neural.Load(params.Model)
			if err != nil {
				return nil, fmt.Errorf("failed to load evaluator model: %w", err)
			}
			return network, nil
		}
		return neural.New(params.Hidden), nil
	}
	return nil, fmt.Errorf("%w: unknown evaluator %q", ErrInvalidParams, name)
}
