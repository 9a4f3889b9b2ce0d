package metrics

import (
	"othello/searcher"
	"othello/strategy"
	"time"
)

type AgentConfig struct {
	ID       int
	Strategy string
	Params   strategy.Params
}

type MoveMetric struct {
	Step   int
	Player string // Colour
	Move   string // Empty on a pass
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer string // Colour
	Winner         string // Colour, empty on a draw
	Black          int    // Final piece counts
	White          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing Black
	Agent2 int // AgentConfig.ID playing White
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
