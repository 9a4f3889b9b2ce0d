package searcher

import (
	"errors"
	"math"
)

// Rewards a playout can credit, from the perspective of one player
const WIN = 1.0
const DRAW = 0.5
const LOSS = 1 - WIN

// ErrInvalidSearch reports a search configured with unusable parameters.
var ErrInvalidSearch = errors.New("invalid search parameters")

// Evaluate scores a payload at a leaf or at the depth cut. maximizing tells
// which kind of ply the payload was reached on.
type Evaluate[T any] func(data T, maximizing bool) float64

func ucb1(rewards float64, visits int, explorationLnN float64, c float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + c*math.Sqrt(explorationLnN/float64(visits))
}
