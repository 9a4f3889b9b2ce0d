package main

import (
	"flag"
	"fmt"
	"os"
	"othello/config"
	"othello/display"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"othello/strategy"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	black := flag.String("black", "", "Controller for Black: human, minimax, expectimax, mcts or custom")
	white := flag.String("white", "", "Controller for White: human, minimax, expectimax, mcts or custom")
	depth := flag.Int("depth", 0, "Search depth for minimax and expectimax")
	simulations := flag.Int("simulations", 0, "MCTS simulations per move")
	seed := flag.Uint64("seed", 0, "Random seed for MCTS, 0 seeds from the clock")
	evaluator := flag.String("evaluator", "", "Leaf evaluator for minimax and expectimax: weighted, pieces or neural")
	model := flag.String("model", "", "Network file for the neural evaluator")
	experiment := flag.Bool("experiment", false, "Run a round robin between the configured strategies instead of a single game")
	games := flag.Int("games", 0, "Games per experiment matchup")
	output := flag.String("output", "", "Directory for experiment results")
	dot := flag.String("dot", "", "Write the last search tree of each computer seat to this DOT file")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "black":
			cfg.Black = config.Seat(*black)
		case "white":
			cfg.White = config.Seat(*white)
		case "depth":
			cfg.Search.Depth = *depth
		case "simulations":
			cfg.Search.Simulations = *simulations
		case "seed":
			cfg.Search.Seed = *seed
		case "evaluator":
			cfg.Search.Evaluator = *evaluator
		case "model":
			cfg.Search.Model = *model
		case "games":
			cfg.Experiment.Games = *games
		case "output":
			cfg.Experiment.Output = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	cfg.Search.KeepTree = *dot != ""
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *experiment {
		configs := experiments.Configs(cfg.Experiment.Strategies, cfg.Search)
		if _, err := experiments.Run("round_robin", configs, experiments.RoundRobin(configs), cfg.Experiment.Games, cfg.Experiment.Output); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := play(cfg, *dot); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func play(cfg config.Config, dot string) error {
	blackPlayer, whitePlayer := game.NewPlayer(game.Black), game.NewPlayer(game.White)
	console := player.NewConsole(os.Stdin, os.Stdout)

	blackSeat, err := player.NewSeat(blackPlayer, string(cfg.Black), cfg.Search, console)
	if err != nil {
		return err
	}
	whiteSeat, err := player.NewSeat(whitePlayer, string(cfg.White), cfg.Search, console)
	if err != nil {
		return err
	}

	g := game.NewGame(blackPlayer, whitePlayer)
	e := engine.LocalEngine(g, blackSeat, whiteSeat)
	e.OnTurn = func(turn int, p *game.Player, dest game.Coord, played bool) {
		if played {
			fmt.Printf("%d. %v plays %s\n", turn, p, display.CoordName(dest))
		} else {
			fmt.Printf("%d. %v passes\n", turn, p)
		}
	}

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	if err := display.Render(os.Stdout, &g.Board, nil); err != nil {
		return err
	}
	if winner == game.Empty {
		fmt.Printf("Draw, %d all\n", gameMetric.Black)
	} else {
		fmt.Printf("%v wins %d to %d\n", winner, max(gameMetric.Black, gameMetric.White), min(gameMetric.Black, gameMetric.White))
	}

	if dot != "" {
		return writeTrees(dot, blackSeat, whiteSeat)
	}
	return nil
}

func writeTrees(path string, seats ...player.Seat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, seat := range seats {
		computer, ok := seat.Controller.(player.Computer)
		if !ok {
			continue
		}
		keeper, ok := computer.Strategy.(strategy.TreeKeeper)
		if !ok || keeper.LastTree() == nil {
			log.Warn().Msgf("%s keeps no search tree for %v", seat.Name(), seat.Player)
			continue
		}
		graph, err := searcher.ToDot(keeper.LastTree(), strategy.Label)
		if err != nil {
			return fmt.Errorf("failed to render %v search tree: %w", seat.Player, err)
		}
		if _, err := fmt.Fprintf(f, "// %v (%s)\n%s\n", seat.Player, seat.Name(), graph); err != nil {
			return err
		}
	}
	log.Info().Msgf("wrote search trees to %s", path)
	return nil
}
