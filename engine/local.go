package engine

import (
	"fmt"
	"othello/display"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
	"time"

	"github.com/rs/zerolog/log"
)

// Local runs a game in-process between two seats.
type Local struct {
	Game     *game.Game
	Seats    [2]player.Seat // Black, White
	MaxTurns int
	// OnTurn, when set, is called after every turn. played is false on a pass.
	OnTurn func(turn int, p *game.Player, dest game.Coord, played bool)
}

// LocalEngine binds black and white to g, whose first player must be black's and second white's.
func LocalEngine(g *game.Game, black, white player.Seat) *Local {
	if black.Player != g.One || white.Player != g.Two {
		panic("seats do not match the game's players")
	}
	return &Local{
		Game:     g,
		Seats:    [2]player.Seat{black, white},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop.
func (e *Local) Run() (game.Kind, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Seats[0].Player.Color.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s plays Black, %s plays White", e.Seats[0].Name(), e.Seats[1].Name())

	current, passes := 0, 0
	for turn := 1; turn <= e.MaxTurns && passes < 2 && !g.Board.IsFull(); turn++ {
		seat, opponent := e.Seats[current], e.Seats[1-current].Player

		dest, played, err := seat.TakeTurn(g, opponent)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("turn %d for %v: %w", turn, seat.Player, err)
		}

		moveMetric := metrics.MoveMetric{Step: turn, Player: seat.Player.Color.String()}
		if played {
			g.ApplyMove(seat.Player, opponent, dest, g.LegalMoves(seat.Player))
			moveMetric.Move = display.CoordName(dest)
			if c, ok := seat.Controller.(player.Computer); ok {
				moveMetric.SearchMetrics = c.Strategy.Metrics()
			}
			passes = 0
			log.Debug().Msgf("turn %d: %v plays %s", turn, seat.Player, moveMetric.Move)
		} else {
			passes++
			log.Debug().Msgf("turn %d: %v passes", turn, seat.Player)
		}
		moveMetrics = append(moveMetrics, moveMetric)

		if e.OnTurn != nil {
			e.OnTurn(turn, seat.Player, dest, played)
		}
		current = 1 - current
	}

	winner := g.Winner()
	gameMetric.Black, gameMetric.White = g.Counts()
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d turns: Black %d, White %d", gameMetric.TotalMoves, gameMetric.Black, gameMetric.White)
	return winner, gameMetric, moveMetrics, nil
}
