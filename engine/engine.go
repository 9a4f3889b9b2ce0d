package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Engine interface {
	// Run plays the game until both players pass in a row, the board is full
	// or the turn limit is reached. The winner is Empty on a draw.
	Run() (winner game.Kind, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
