// Package config loads the YAML run configuration. Every field is optional;
// missing ones keep the compiled-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"othello/player"
	"othello/strategy"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Seat names who controls a colour: Human or a strategy name.
type Seat string

const Human = Seat(player.HumanName)

// Search holds the parameters shared by every computer seat.
type Search = strategy.Params

type Experiment struct {
	Games      int      `yaml:"games"`
	Strategies []string `yaml:"strategies"`
	Output     string   `yaml:"output"`
}

type Config struct {
	Black      Seat       `yaml:"black"`
	White      Seat       `yaml:"white"`
	LogLevel   string     `yaml:"log_level"`
	Search     Search     `yaml:"search"`
	Experiment Experiment `yaml:"experiment"`
}

// Default returns a human playing Black against minimax.
func Default() Config {
	return Config{
		Black:    Human,
		White:    Seat(strategy.Minimax),
		LogLevel: "info",
		Search:   strategy.DefaultParams(),
		Experiment: Experiment{
			Games:      10,
			Strategies: strategy.Names(),
			Output:     "results",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	for _, seat := range []Seat{c.Black, c.White} {
		if seat != Human && !strategy.IsKnown(string(seat)) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, strategy.ErrUnknownStrategy, seat)
		}
	}
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("%w: experiment games must be positive, got %d", ErrInvalidConfig, c.Experiment.Games)
	}
	for _, name := range c.Experiment.Strategies {
		if !strategy.IsKnown(name) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, strategy.ErrUnknownStrategy, name)
		}
	}
	return nil
}
