package game

import "fmt"

// Size is the side length of the board.
const Size = 8

// Kind is the tri-state content of a board cell. A non-empty Kind doubles as a player's colour.
type Kind int

const (
	Empty Kind = iota
	Black
	White
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Opponent returns the other colour. Empty has no opponent.
func (k Kind) Opponent() Kind {
	switch k {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Coord identifies a cell by (row, column). Cell identity is positional: two
// cells with equal coordinates are the same cell whatever their contents.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// InBounds reports whether the coordinate lies on the board
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Cell is a coordinate together with its current contents.
type Cell struct {
	Coord
	Kind Kind
}

// Moves maps every legal destination to the origins that justify it. Keys are
// empty cells, origins are cells owned by the mover.
type Moves map[Coord][]Coord

// Destinations returns the legal destinations in row-major order.
func (m Moves) Destinations() []Coord {
	dests := make([]Coord, 0, len(m))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if _, ok := m[Coord{r, c}]; ok {
				dests = append(dests, Coord{r, c})
			}
		}
	}
	return dests
}

// Evaluator scores a board for player against opponent; higher is better for player.
type Evaluator interface {
	Evaluate(board *Board, player, opponent Kind) float64
}

// EvaluatorFunc adapts a plain function to an Evaluator.
type EvaluatorFunc func(board *Board, player, opponent Kind) float64

func (f EvaluatorFunc) Evaluate(board *Board, player, opponent Kind) float64 {
	return f(board, player, opponent)
}
