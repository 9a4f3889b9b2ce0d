package game

// Weights is a positional weight table indexed [row][column].
type Weights [Size][Size]float64

// DefaultWeights favours corners and edges and heavily penalises the cells
// next to a corner, which tend to hand the corner to the opponent.
var DefaultWeights = Weights{
	{200, -70, 30, 25, 25, 30, -70, 200},
	{-70, -100, -10, -10, -10, -10, -100, -70},
	{30, -10, 2, 2, 2, 2, -10, 30},
	{25, -10, 2, 2, 2, 2, -10, 25},
	{25, -10, 2, 2, 2, 2, -10, 25},
	{30, -10, 2, 2, 2, 2, -10, 30},
	{-70, -100, -10, -10, -10, -10, -100, -70},
	{200, -70, 30, 25, 25, 30, -70, 200},
}

// WeightedEvaluator sums the weights of player's cells and subtracts those of opponent's.
type WeightedEvaluator struct {
	Weights Weights
}

// NewWeightedEvaluator returns an evaluator over DefaultWeights.
func NewWeightedEvaluator() *WeightedEvaluator {
	return &WeightedEvaluator{Weights: DefaultWeights}
}

func (e *WeightedEvaluator) Evaluate(board *Board, player, opponent Kind) float64 {
	score := 0.0
	for r := range board.cells {
		for c, k := range board.cells[r] {
			switch k {
			case player:
				score += e.Weights[r][c]
			case opponent:
				score -= e.Weights[r][c]
			}
		}
	}
	return score
}

// EvaluatePieces scores the piece difference between player and opponent
// relative to their total, between -1 and 1.
func EvaluatePieces(board *Board, player, opponent Kind) float64 {
	return normalize(float64(board.Count(player)), float64(board.Count(opponent)))
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
