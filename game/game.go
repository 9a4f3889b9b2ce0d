package game

import "fmt"

// Game is the live match: one board and the two players whose owned sets
// mirror it. ApplyMove is the only way play mutates it.
type Game struct {
	Board Board
	One   *Player
	Two   *Player
}

// NewGame sets up the standard opening for the two players. The first
// player must be Black and the second White.
func NewGame(one, two *Player) *Game {
	if one.Color != Black || two.Color != White {
		panic(fmt.Sprintf("players must be Black then White, got %v and %v", one.Color, two.Color))
	}
	g := &Game{Board: NewBoard(), One: one, Two: two}
	g.sync()
	return g
}

// NewGameFromBoard starts a game from an arbitrary position, rebuilding both owned sets from the board.
func NewGameFromBoard(board Board, one, two *Player) *Game {
	g := &Game{Board: board, One: one, Two: two}
	g.sync()
	return g
}

func (g *Game) sync() {
	for _, p := range []*Player{g.One, g.Two} {
		p.reset()
		for _, c := range g.Board.Cells(p.Color) {
			p.add(c)
		}
	}
}

// Other returns the player that is not p.
func (g *Game) Other(p *Player) *Player {
	if p == g.One {
		return g.Two
	}
	return g.One
}

// LegalMoves returns player's destinations on the live board.
func (g *Game) LegalMoves(player *Player) Moves {
	return g.Board.LegalMoves(player.Color)
}

// TakeSpace claims a single cell for acting. It is a no-op when acting already owns it.
func (g *Game) TakeSpace(acting, opponent *Player, c Coord) {
	if acting.Owns(c) {
		return
	}
	opponent.remove(c)
	acting.add(c)
	g.Board.Set(c, acting.Color)
}

// ApplyMove plays dest for acting, flipping every cell between dest and each
// justifying origin. dest must be a key of moves; anything else is a caller
// bug and panics.
func (g *Game) ApplyMove(acting, opponent *Player, dest Coord, moves Moves) {
	origins, ok := moves[dest]
	if !ok {
		panic(fmt.Sprintf("destination %v is not a legal move for %v", dest, acting.Color))
	}
	for _, c := range g.Board.Capture(acting.Color, dest, origins) {
		opponent.remove(c)
		acting.add(c)
	}
}

// State snapshots the live game with mover to play.
func (g *Game) State(mover *Player) State {
	return NewState(g.Board, mover, g.Other(mover))
}

// IsOver reports whether the board is full or neither player can move.
func (g *Game) IsOver() bool {
	return g.Board.IsFull() || (!g.Board.HasMoves(Black) && !g.Board.HasMoves(White))
}

// Counts returns the number of Black and White pieces.
func (g *Game) Counts() (black, white int) {
	return g.Board.Count(Black), g.Board.Count(White)
}

// Winner returns the colour with more pieces, or Empty on a draw.
func (g *Game) Winner() Kind { return winner(&g.Board) }

func winner(b *Board) Kind {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}
