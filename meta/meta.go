// meta/meta.go
package meta

import "math"

// DEPTH defines the default number of plies searched by minimax and expectimax.
const DEPTH = 4

// SIMULATIONS defines the default number of simulations for MCTS.
const SIMULATIONS = 1000

// ROLLOUT_CUTOFF defines the maximum number of random moves in one MCTS playout.
const ROLLOUT_CUTOFF = 100

// EXPLORATION defines the default UCB1 exploration constant.
const EXPLORATION = math.Sqrt2

// MAX_TURNS caps the number of turns the engine plays, passes included.
const MAX_TURNS = 200
