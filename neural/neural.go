// Package neural wraps a small feed-forward value network that scores
// positions for the custom strategy.
package neural

import (
	"errors"
	"fmt"
	"math"
	"os"
	"othello/game"

	deep "github.com/patrikeh/go-deep"
)

// Inputs is the width of the input layer: one plane each for the player's
// pieces, the opponent's pieces and the empty squares.
const Inputs = 3 * game.Size * game.Size

var ErrShape = errors.New("network shape does not match the board encoding")

// Network is a value network implementing game.Evaluator.
type Network struct {
	net *deep.Neural
}

// New builds a network with randomly initialised weights, the given hidden
// layer sizes and a single linear output.
func New(hidden []int) *Network {
	layout := append(append([]int{}, hidden...), 1)
	return &Network{net: deep.NewNeural(&deep.Config{
		Inputs:     Inputs,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.1, 0.0),
		Bias:       true,
	})}
}

// Load reads a network previously written with Save.
func Load(path string) (*Network, error) {
	dump, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	net, err := deep.Unmarshal(dump)
	if err != nil {
		return nil, fmt.Errorf("failed to decode network %s: %w", path, err)
	}
	if net.Config == nil || net.Config.Inputs != Inputs {
		return nil, fmt.Errorf("%w: %s", ErrShape, path)
	}
	if layout := net.Config.Layout; len(layout) == 0 || layout[len(layout)-1] != 1 {
		return nil, fmt.Errorf("%w: %s must have a single output", ErrShape, path)
	}
	return &Network{net: net}, nil
}

// Save writes the network's configuration and weights to path.
func (n *Network) Save(path string) error {
	dump, err := n.net.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, dump, 0o644)
}

// Evaluate scores board for player. Higher is better for player.
func (n *Network) Evaluate(board *game.Board, player, opponent game.Kind) float64 {
	return n.net.Predict(Input(board, player, opponent))[0]
}

// Input encodes board as three stacked row-major planes relative to player.
func Input(board *game.Board, player, opponent game.Kind) []float64 {
	const plane = game.Size * game.Size
	input := make([]float64, Inputs)
	for row := 0; row < game.Size; row++ {
		for col := 0; col < game.Size; col++ {
			i := row*game.Size + col
			switch board.At(game.Coord{Row: row, Col: col}) {
			case player:
				input[i] = 1
			case opponent:
				input[plane+i] = 1
			default:
				input[2*plane+i] = 1
			}
		}
	}
	return input
}

// Softmax turns scores into a probability distribution.
func Softmax(scores []float64) []float64 {
	top := math.Inf(-1)
	for _, s := range scores {
		if !math.IsNaN(s) && s > top {
			top = s
		}
	}
	masses := make([]float64, len(scores))
	for i, s := range scores {
		switch {
		case math.IsInf(top, 1):
			// Every +Inf score shares the mass.
			if math.IsInf(s, 1) {
				masses[i] = 1
			}
		case math.IsNaN(s):
		default:
			masses[i] = math.Exp(s - top)
		}
	}
	return Distribution(masses)
}

// Distribution normalises non-negative masses so they sum to one. Negative
// and NaN masses count as zero. When no usable mass remains the result is
// uniform.
func Distribution(masses []float64) []float64 {
	probabilities := make([]float64, len(masses))
	if len(masses) == 0 {
		return probabilities
	}

	total := 0.0
	for i, m := range masses {
		if m > 0 && !math.IsNaN(m) {
			probabilities[i] = m
			total += m
		}
	}
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		for i := range probabilities {
			probabilities[i] = 1 / float64(len(masses))
		}
		return probabilities
	}
	for i := range probabilities {
		probabilities[i] /= total
	}
	return probabilities
}

// BestMove picks the legal destination with the highest output, where
// outputs holds one value per square in row-major order. Ties go to the
// first square. It reports false when there is no legal move or outputs
// does not cover the board.
func BestMove(outputs []float64, moves game.Moves) (game.Coord, bool) {
	if len(moves) == 0 || len(outputs) < game.Size*game.Size {
		return game.Coord{}, false
	}
	var best game.Coord
	found := false
	for _, dest := range moves.Destinations() {
		if !found || outputs[dest.Row*game.Size+dest.Col] > outputs[best.Row*game.Size+best.Col] {
			best, found = dest, true
		}
	}
	return best, true
}
