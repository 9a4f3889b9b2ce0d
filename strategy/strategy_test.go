package strategy

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func newOpening() (*game.Game, *game.Player, *game.Player) {
	black, white := game.NewPlayer(game.Black), game.NewPlayer(game.White)
	return game.NewGame(black, white), black, white
}

// cornerGame gives Black the choice between taking (0,0) and playing (2,2).
func cornerGame() (*game.Game, *game.Player, *game.Player) {
	var b game.Board
	b.Set(game.Coord{Row: 0, Col: 2}, game.Black)
	b.Set(game.Coord{Row: 0, Col: 1}, game.White)
	b.Set(game.Coord{Row: 1, Col: 2}, game.White)
	black, white := game.NewPlayer(game.Black), game.NewPlayer(game.White)
	return game.NewGameFromBoard(b, black, white), black, white
}

func testParams() Params {
	params := DefaultParams()
	params.Depth = 2
	params.Simulations = 200
	params.Seed = 42
	params.Hidden = []int{8}
	return params
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		s, err := New(name, testParams())
		require.NoError(t, err)
		require.Equal(t, name, s.Name())
	}

	_, err := New("alphabeta", testParams())
	require.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = New("", testParams())
	require.ErrorIs(t, err, ErrUnknownStrategy)

	bad := testParams()
	bad.Depth = 0
	_, err = New(Minimax, bad)
	require.ErrorIs(t, err, ErrInvalidParams)

	bad = testParams()
	bad.Evaluator = "magic"
	_, err = New(Expectimax, bad)
	require.ErrorIs(t, err, ErrInvalidParams)

	bad = testParams()
	bad.Model = "does/not/exist.json"
	_, err = New(Custom, bad)
	require.Error(t, err)
}

func TestChooseMoveIsLegal(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, testParams())
			require.NoError(t, err)

			g, black, white := newOpening()
			move, ok := s.ChooseMove(g, black, white)
			require.True(t, ok)
			require.Contains(t, g.LegalMoves(black), move)

			g.ApplyMove(black, white, move, g.LegalMoves(black))
			move, ok = s.ChooseMove(g, white, black)
			require.True(t, ok)
			require.Contains(t, g.LegalMoves(white), move)
			require.Positive(t, s.Metrics().Evaluations)
		})
	}
}

func TestChooseMoveWithoutMoves(t *testing.T) {
	var b game.Board
	b.Set(game.Coord{Row: 0, Col: 0}, game.Black)
	b.Set(game.Coord{Row: 0, Col: 1}, game.White)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, testParams())
			require.NoError(t, err)

			black, white := game.NewPlayer(game.Black), game.NewPlayer(game.White)
			g := game.NewGameFromBoard(b, black, white)
			_, ok := s.ChooseMove(g, white, black)
			require.False(t, ok, "white cannot bracket a corner piece")
		})
	}
}

func TestChooseMoveLeavesGameUntouched(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, testParams())
			require.NoError(t, err)

			g, black, white := newOpening()
			before := g.Board
			s.ChooseMove(g, black, white)
			require.Equal(t, before, g.Board)
			require.Equal(t, 2, black.Count())
			require.Equal(t, 2, white.Count())
		})
	}
}

func TestTreeStrategiesTakeTheCorner(t *testing.T) {
	for _, name := range []string{Minimax, Expectimax} {
		for _, depth := range []int{1, 2} {
			params := testParams()
			params.Depth = depth
			s, err := New(name, params)
			require.NoError(t, err)

			g, black, white := cornerGame()
			move, ok := s.ChooseMove(g, black, white)
			require.True(t, ok)
			require.Equal(t, game.Coord{Row: 0, Col: 0}, move, "%s at depth %d", name, depth)
		}
	}
}

func TestKeepTree(t *testing.T) {
	params := testParams()
	params.KeepTree = true
	s, err := New(Minimax, params)
	require.NoError(t, err)

	g, black, white := newOpening()
	s.ChooseMove(g, black, white)

	tree := s.(TreeKeeper).LastTree()
	require.NotNil(t, tree)
	require.Len(t, tree.Children(), 4)
	for _, child := range tree.Children() {
		require.Len(t, child.Children(), 3)
	}
	require.Equal(t, int64(16), s.Metrics().Nodes)
	require.Equal(t, int(s.Metrics().Nodes)+1, tree.Size())
	require.Positive(t, s.Metrics().Evaluations)
	require.LessOrEqual(t, s.Metrics().Evaluations, int64(12), "pruning only ever skips leaves")

	params.KeepTree = false
	s, err = New(Minimax, params)
	require.NoError(t, err)
	s.ChooseMove(g, black, white)
	require.Nil(t, s.(TreeKeeper).LastTree())
}

func TestMCTSDeterministicWithSeed(t *testing.T) {
	choose := func() game.Coord {
		s, err := New(MCTS, testParams())
		require.NoError(t, err)
		g, black, white := newOpening()
		move, ok := s.ChooseMove(g, black, white)
		require.True(t, ok)
		require.Equal(t, int64(200), s.Metrics().Episodes)
		return move
	}
	require.Equal(t, choose(), choose())
}

func TestMCTSTakesTheCorner(t *testing.T) {
	params := testParams()
	params.Simulations = 2000
	s, err := New(MCTS, params)
	require.NoError(t, err)

	g, black, white := cornerGame()
	move, ok := s.ChooseMove(g, black, white)
	require.True(t, ok)
	require.Equal(t, game.Coord{Row: 0, Col: 0}, move)
}

func TestCustomPicksTheMostLikelyMove(t *testing.T) {
	s := newCustomStrategy(game.NewWeightedEvaluator())

	g, black, white := cornerGame()
	move, ok := s.ChooseMove(g, black, white)
	require.True(t, ok)
	require.Equal(t, game.Coord{Row: 0, Col: 0}, move)
	require.Equal(t, int64(2), s.Metrics().Evaluations)

	flat := newCustomStrategy(game.EvaluatorFunc(func(*game.Board, game.Kind, game.Kind) float64 { return 0 }))
	g, black, white = newOpening()
	move, ok = flat.ChooseMove(g, black, white)
	require.True(t, ok)
	require.Equal(t, game.Coord{Row: 2, Col: 3}, move, "equal scores fall back to the first move")
}
