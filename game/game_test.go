package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGame() (*Game, *Player, *Player) {
	black, white := NewPlayer(Black), NewPlayer(White)
	return NewGame(black, white), black, white
}

func requireConsistent(t *testing.T, g *Game) {
	t.Helper()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			coord := Coord{r, c}
			kind := g.Board.At(coord)
			require.Equal(t, kind == Black, g.One.Owns(coord), "Black owned set should mirror the board at %v", coord)
			require.Equal(t, kind == White, g.Two.Owns(coord), "White owned set should mirror the board at %v", coord)
		}
	}
}

func TestOpeningPosition(t *testing.T) {
	g, black, white := newTestGame()

	require.Equal(t, []Coord{{3, 4}, {4, 3}}, black.Owned())
	require.Equal(t, []Coord{{3, 3}, {4, 4}}, white.Owned())
	requireConsistent(t, g)

	moves := g.LegalMoves(black)
	require.Equal(t, []Coord{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, moves.Destinations())
	require.Equal(t, []Coord{{4, 3}}, moves[Coord{2, 3}])
	require.Equal(t, []Coord{{3, 4}}, moves[Coord{3, 2}])
	require.Equal(t, []Coord{{4, 3}}, moves[Coord{4, 5}])
	require.Equal(t, []Coord{{3, 4}}, moves[Coord{5, 4}])
}

func TestApplyMove(t *testing.T) {
	t.Run("opening move flips exactly one cell", func(t *testing.T) {
		g, black, white := newTestGame()
		before := g.Board

		g.ApplyMove(black, white, Coord{2, 3}, g.LegalMoves(black))

		require.Equal(t, Black, g.Board.At(Coord{2, 3}))
		require.Equal(t, Black, g.Board.At(Coord{3, 3}))
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				coord := Coord{r, c}
				if coord == (Coord{2, 3}) || coord == (Coord{3, 3}) {
					continue
				}
				require.Equal(t, before.At(coord), g.Board.At(coord), "cell %v should be untouched", coord)
			}
		}
		require.Equal(t, 4, black.Count())
		require.Equal(t, 1, white.Count())
		requireConsistent(t, g)
	})

	t.Run("every opening move is sound", func(t *testing.T) {
		opening := NewBoard()
		for _, dest := range opening.LegalMoves(Black).Destinations() {
			g, black, white := newTestGame()
			moves := g.LegalMoves(black)

			g.ApplyMove(black, white, dest, moves)

			require.Equal(t, Black, g.Board.At(dest))
			require.Equal(t, 1, white.Count(), "exactly one white cell should flip for %v", dest)
			requireConsistent(t, g)
		}
	})

	t.Run("captures along several rays at once", func(t *testing.T) {
		var b Board
		// Black at (0,0), (0,4), (4,4); White between them and the destination (0,2)...
		b.Set(Coord{0, 0}, Black)
		b.Set(Coord{0, 1}, White)
		b.Set(Coord{0, 3}, White)
		b.Set(Coord{0, 4}, Black)
		b.Set(Coord{1, 3}, White)
		b.Set(Coord{2, 4}, Black)
		b.Set(Coord{5, 5}, White)
		black, white := NewPlayer(Black), NewPlayer(White)
		g := NewGameFromBoard(b, black, white)

		moves := g.LegalMoves(black)
		require.ElementsMatch(t, []Coord{{0, 0}, {0, 4}, {2, 4}}, moves[Coord{0, 2}])

		g.ApplyMove(black, white, Coord{0, 2}, moves)

		for _, c := range []Coord{{0, 1}, {0, 2}, {0, 3}, {1, 3}} {
			require.Equal(t, Black, g.Board.At(c), "cell %v should be captured", c)
		}
		require.Equal(t, White, g.Board.At(Coord{5, 5}), "cells off the rays must not change")
		requireConsistent(t, g)
	})

	t.Run("long diagonal capture", func(t *testing.T) {
		var b Board
		b.Set(Coord{7, 7}, Black)
		for i := 1; i < 7; i++ {
			b.Set(Coord{i, i}, White)
		}
		black, white := NewPlayer(Black), NewPlayer(White)
		g := NewGameFromBoard(b, black, white)

		moves := g.LegalMoves(black)
		require.Equal(t, []Coord{{7, 7}}, moves[Coord{0, 0}])

		g.ApplyMove(black, white, Coord{0, 0}, moves)

		require.Equal(t, 8, black.Count())
		require.Equal(t, 0, white.Count())
		requireConsistent(t, g)
	})

	t.Run("illegal destination panics", func(t *testing.T) {
		g, black, white := newTestGame()
		require.Panics(t, func() {
			g.ApplyMove(black, white, Coord{0, 0}, g.LegalMoves(black))
		})
	})
}

func TestTakeSpace(t *testing.T) {
	g, black, white := newTestGame()

	g.TakeSpace(black, white, Coord{3, 3})
	require.Equal(t, Black, g.Board.At(Coord{3, 3}))
	require.True(t, black.Owns(Coord{3, 3}))
	require.False(t, white.Owns(Coord{3, 3}))

	g.TakeSpace(black, white, Coord{3, 3})
	require.Equal(t, 3, black.Count(), "claiming an owned cell should be a no-op")
	requireConsistent(t, g)
}

func TestBoardCell(t *testing.T) {
	b := NewBoard()
	require.Equal(t, Cell{Coord: Coord{3, 3}, Kind: White}, b.Cell(Coord{3, 3}))
	require.Equal(t, Cell{Coord: Coord{3, 4}, Kind: Black}, b.Cell(Coord{3, 4}))
	require.Equal(t, Cell{Coord: Coord{0, 0}, Kind: Empty}, b.Cell(Coord{0, 0}))
}

func TestLegalMovesNone(t *testing.T) {
	var b Board
	b.Set(Coord{0, 0}, Black)
	b.Set(Coord{7, 7}, White)

	require.Empty(t, b.LegalMoves(Black))
	require.Empty(t, b.LegalMoves(White))
}

func TestIsOver(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		var b Board
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				b.Set(Coord{r, c}, Black)
			}
		}
		b.Set(Coord{0, 0}, White)
		g := NewGameFromBoard(b, NewPlayer(Black), NewPlayer(White))

		require.True(t, g.IsOver())
		s := g.State(g.One)
		require.True(t, s.IsGameOver())
		swapped := s.Swap()
		require.True(t, swapped.IsGameOver())
		require.Equal(t, Black, g.Winner())
	})

	t.Run("neither player can move", func(t *testing.T) {
		var b Board
		b.Set(Coord{0, 0}, Black)
		b.Set(Coord{7, 7}, White)
		g := NewGameFromBoard(b, NewPlayer(Black), NewPlayer(White))

		require.True(t, g.IsOver())
		require.Equal(t, Empty, g.Winner())
	})

	t.Run("only one player can move", func(t *testing.T) {
		var b Board
		b.Set(Coord{0, 0}, Black)
		b.Set(Coord{0, 1}, White)
		g := NewGameFromBoard(b, NewPlayer(Black), NewPlayer(White))

		require.False(t, g.IsOver(), "a player without moves passes, the game goes on")
		require.Empty(t, g.LegalMoves(g.Two))
		require.NotEmpty(t, g.LegalMoves(g.One))
	})

	t.Run("opening", func(t *testing.T) {
		g, _, _ := newTestGame()
		require.False(t, g.IsOver())
	})
}
