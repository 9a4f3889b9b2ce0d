package player

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/strategy"
)

var ErrNoInput = errors.New("no more input")

// HumanName is the controller name that seats a person instead of a strategy.
const HumanName = "human"

// Controller decides who picks a seat's moves. It is either Human or Computer.
type Controller interface {
	controller()
}

// Human reads moves from Input.
type Human struct {
	Input MoveReader
}

// Computer asks Strategy for moves.
type Computer struct {
	Strategy strategy.Strategy
}

func (Human) controller()    {}
func (Computer) controller() {}

// MoveReader supplies moves chosen by a person. Implementations only return
// destinations present in moves.
type MoveReader interface {
	ReadMove(g *game.Game, p *game.Player, moves game.Moves) (game.Coord, error)
}

// Seat pairs a colour's player with its controller.
type Seat struct {
	Player     *game.Player
	Controller Controller
}

// NewSeat builds a seat for the named controller: HumanName reads from input,
// any other name is resolved as a strategy.
func NewSeat(p *game.Player, name string, params strategy.Params, input MoveReader) (Seat, error) {
	if name == HumanName {
		if input == nil {
			return Seat{}, fmt.Errorf("human seat for %v needs an input", p)
		}
		return Seat{Player: p, Controller: Human{Input: input}}, nil
	}
	s, err := strategy.New(name, params)
	if err != nil {
		return Seat{}, err
	}
	return Seat{Player: p, Controller: Computer{Strategy: s}}, nil
}

// Name is HumanName or the strategy's name.
func (s Seat) Name() string {
	if c, ok := s.Controller.(Computer); ok {
		return c.Strategy.Name()
	}
	return HumanName
}

// TakeTurn returns the seat's move, or false when it has to pass.
func (s Seat) TakeTurn(g *game.Game, opponent *game.Player) (game.Coord, bool, error) {
	moves := g.LegalMoves(s.Player)
	if len(moves) == 0 {
		return game.Coord{}, false, nil
	}

	switch c := s.Controller.(type) {
	case Human:
		dest, err := c.Input.ReadMove(g, s.Player, moves)
		if err != nil {
			return game.Coord{}, false, err
		}
		return dest, true, nil
	case Computer:
		dest, ok := c.Strategy.ChooseMove(g, s.Player, opponent)
		return dest, ok, nil
	}
	panic(fmt.Sprintf("unknown controller %T", s.Controller))
}
