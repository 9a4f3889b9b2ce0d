package game

import "strings"

// The eight ray directions as (row, column) steps.
var directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 grid of cells. It is a value type: assigning a Board copies it.
type Board struct {
	cells [Size][Size]Kind
}

// NewBoard returns a board with the standard opening position: White on
// (3,3) and (4,4), Black on (3,4) and (4,3).
func NewBoard() Board {
	var b Board
	b.cells[3][3] = White
	b.cells[4][4] = White
	b.cells[3][4] = Black
	b.cells[4][3] = Black
	return b
}

// At returns the contents of the cell at c.
func (b *Board) At(c Coord) Kind { return b.cells[c.Row][c.Col] }

// Cell returns the cell at c.
func (b *Board) Cell(c Coord) Cell { return Cell{Coord: c, Kind: b.cells[c.Row][c.Col]} }

// Set overwrites the contents of the cell at c.
func (b *Board) Set(c Coord, k Kind) { b.cells[c.Row][c.Col] = k }

// Count returns the number of cells holding k.
func (b *Board) Count(k Kind) int {
	n := 0
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] == k {
				n++
			}
		}
	}
	return n
}

// IsFull reports whether no empty cell remains.
func (b *Board) IsFull() bool { return b.Count(Empty) == 0 }

// Cells returns every cell holding k in row-major order.
func (b *Board) Cells(k Kind) []Coord {
	var coords []Coord
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] == k {
				coords = append(coords, Coord{r, c})
			}
		}
	}
	return coords
}

// LegalMoves scans every empty cell along the eight rays. A ray that crosses
// one or more opponent cells and then reaches a cell of player's colour makes
// that cell an origin for the empty destination.
func (b *Board) LegalMoves(player Kind) Moves {
	opponent := player.Opponent()
	moves := Moves{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != Empty {
				continue
			}

			var origins []Coord
			for _, d := range directions {
				cur := Coord{r + d.Row, c + d.Col}
				crossed := false
				for cur.InBounds() && b.At(cur) == opponent {
					crossed = true
					cur = Coord{cur.Row + d.Row, cur.Col + d.Col}
				}
				if crossed && cur.InBounds() && b.At(cur) == player {
					origins = append(origins, cur)
				}
			}

			if len(origins) > 0 {
				moves[Coord{r, c}] = origins
			}
		}
	}
	return moves
}

// HasMoves reports whether player has at least one legal destination.
func (b *Board) HasMoves(player Kind) bool { return len(b.LegalMoves(player)) > 0 }

// Capture walks from dest towards each origin (origin excluded) and sets every
// cell on the way to colour. It returns the cells whose contents changed.
func (b *Board) Capture(colour Kind, dest Coord, origins []Coord) []Coord {
	var changed []Coord
	for _, origin := range origins {
		step := Coord{sign(origin.Row - dest.Row), sign(origin.Col - dest.Col)}
		for cur := dest; cur != origin && cur.InBounds(); cur = (Coord{cur.Row + step.Row, cur.Col + step.Col}) {
			if b.At(cur) != colour {
				b.Set(cur, colour)
				changed = append(changed, cur)
			}
		}
	}
	return changed
}

// String renders the board with X for Black, O for White and . for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.cells {
		for c := range b.cells[r] {
			switch b.cells[r][c] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
