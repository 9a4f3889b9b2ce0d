package game

import "fmt"

// State is an independent snapshot of a position: a private copy of the
// board plus the mover and opponent roles. The players are shared with the
// live game and only their colours are consulted; playing on a State never
// touches their owned sets. A State is never mutated, operations return a new one.
type State struct {
	board    Board
	mover    *Player
	opponent *Player
}

// NewState copies board and binds the roles.
func NewState(board Board, mover, opponent *Player) State {
	return State{board: board, mover: mover, opponent: opponent}
}

// Board exposes the snapshot's board. Callers must treat it as read-only.
func (s *State) Board() *Board { return &s.board }

// Mover returns the player to move.
func (s *State) Mover() *Player { return s.mover }

// Opponent returns the player waiting.
func (s *State) Opponent() *Player { return s.opponent }

// Swap returns a new snapshot with the roles exchanged, which is how a pass is played.
func (s *State) Swap() State {
	return NewState(s.board, s.opponent, s.mover)
}

// LegalMoves returns the mover's destinations.
func (s *State) LegalMoves() Moves {
	return s.board.LegalMoves(s.mover.Color)
}

// Play applies dest for the mover on a copy of the board and hands the turn
// to the opponent. dest must be legal for the mover.
func (s *State) Play(dest Coord) State {
	origins, ok := s.LegalMoves()[dest]
	if !ok {
		panic(fmt.Sprintf("cannot play %v for %v: not a legal move", dest, s.mover.Color))
	}
	next := NewState(s.board, s.opponent, s.mover)
	next.board.Capture(s.mover.Color, dest, origins)
	return next
}

// IsGameOver reports whether the board is full or neither role can move.
func (s *State) IsGameOver() bool {
	return s.board.IsFull() || (!s.board.HasMoves(s.mover.Color) && !s.board.HasMoves(s.opponent.Color))
}

// Winner returns the colour with more pieces on the snapshot, Empty on a draw.
func (s *State) Winner() Kind { return winner(&s.board) }

// Outcome scores the position by piece count for colour: 1 for a win, 0 for
// a loss and 0.5 for a draw.
func (s *State) Outcome(colour Kind) float64 {
	switch s.Winner() {
	case colour:
		return 1
	case Empty:
		return 0.5
	}
	return 0
}
