package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/strategy"

	"github.com/rs/zerolog/log"
)

// Configs gives each named strategy an agent config sharing params.
func Configs(names []string, params strategy.Params) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, len(names))
	for i, name := range names {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Strategy: name, Params: params})
	}
	return configs
}

// RoundRobin pairs every config with every other one, once with each colour.
func RoundRobin(configs []metrics.AgentConfig) [][]metrics.AgentConfig {
	matchUps := [][]metrics.AgentConfig{}
	for i, config1 := range configs {
		for j, config2 := range configs {
			if i != j {
				matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
			}
		}
	}
	return matchUps
}

// Run plays numGames per matchup, the first config of each taking Black, and
// stores configs, game records and move records under root/name. It returns
// the directory written to.
func Run(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, root string) (string, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between %s (agent %d) and %s (agent %d)...",
			mi+1, len(matchUps), config1.Strategy, config1.ID, config2.Strategy, config2.ID)

		for i := 0; i < numGames; i++ {
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteMoveParquet(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored experiment results in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays config1 as Black against config2 as White. Seeded configs
// are offset by round so repeated games differ.
func runGame(config1, config2 metrics.AgentConfig, round uint64) (game.Kind, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, white := game.NewPlayer(game.Black), game.NewPlayer(game.White)
	seat1, err := newSeat(black, config1, round)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	seat2, err := newSeat(white, config2, round)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(game.NewGame(black, white), seat1, seat2)
	return e.Run()
}

func newSeat(p *game.Player, config metrics.AgentConfig, round uint64) (player.Seat, error) {
	params := config.Params
	if params.Seed != 0 {
		params.Seed += round
	}
	return player.NewSeat(p, config.Strategy, params, nil)
}
