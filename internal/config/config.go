// Package config exposes the on-disk configuration (YAML) for the
// simulation and backtest pipeline.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"btc-backtest/internal/sim"
	"btc-backtest/internal/strategy"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Indicators IndicatorConfig  `yaml:"indicators"`
	Strategy   StrategyConfig   `yaml:"strategy"`
	Portfolio  PortfolioConfig  `yaml:"portfolio"`
}

type SimulationConfig struct {
	Days         int     `yaml:"days"`
	InitialPrice float64 `yaml:"initial_price"`
	Mu           float64 `yaml:"mu"`
	Sigma        float64 `yaml:"sigma"`
	Seed         int64   `yaml:"seed"`
}

type IndicatorConfig struct {
	ShortWindow int `yaml:"window_short"`
	LongWindow  int `yaml:"window_long"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

type PortfolioConfig struct {
	InitialCash float64 `yaml:"initial_cash"`
}

// Default returns the reference configuration. The seed is a fixed
// constant, so a default run reproduces the identical path every time.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Days:         60,
			InitialPrice: 65000,
			Mu:           0.0005,
			Sigma:        0.04,
			Seed:         sim.DefaultSeed,
		},
		Indicators: IndicatorConfig{
			ShortWindow: 7,
			LongWindow:  30,
		},
		Strategy: StrategyConfig{
			Name: strategy.DefaultName,
		},
		Portfolio: PortfolioConfig{
			InitialCash: 100000,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config without defaulting or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults overlays the reference defaults onto zero-valued fields.
// Note: mu and seed are allowed to be 0 in theory, but a literal zero
// here means "use the default"; the reference behavior fixes both.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.Simulation.Days == 0 {
		c.Simulation.Days = def.Simulation.Days
	}
	if c.Simulation.InitialPrice == 0 {
		c.Simulation.InitialPrice = def.Simulation.InitialPrice
	}
	if c.Simulation.Mu == 0 {
		c.Simulation.Mu = def.Simulation.Mu
	}
	if c.Simulation.Sigma == 0 {
		c.Simulation.Sigma = def.Simulation.Sigma
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = def.Simulation.Seed
	}
	if c.Indicators.ShortWindow == 0 {
		c.Indicators.ShortWindow = def.Indicators.ShortWindow
	}
	if c.Indicators.LongWindow == 0 {
		c.Indicators.LongWindow = def.Indicators.LongWindow
	}
	if c.Strategy.Name == "" {
		c.Strategy.Name = def.Strategy.Name
	}
	if c.Portfolio.InitialCash == 0 {
		c.Portfolio.InitialCash = def.Portfolio.InitialCash
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.SimParams().Validate(); err != nil {
		return err
	}
	if c.Indicators.ShortWindow <= 0 {
		return errors.New("indicators.window_short must be > 0")
	}
	if c.Indicators.LongWindow <= 0 {
		return errors.New("indicators.window_long must be > 0")
	}
	if c.Indicators.ShortWindow >= c.Indicators.LongWindow {
		return errors.New("indicators.window_short must be < indicators.window_long")
	}
	if _, err := strategy.New(c.Strategy.Name); err != nil {
		return err
	}
	if c.Portfolio.InitialCash <= 0 {
		return errors.New("portfolio.initial_cash must be > 0")
	}
	return nil
}

func (c *Config) SimParams() sim.Params {
	return sim.Params{
		Days:         c.Simulation.Days,
		InitialPrice: c.Simulation.InitialPrice,
		Mu:           c.Simulation.Mu,
		Sigma:        c.Simulation.Sigma,
		Seed:         c.Simulation.Seed,
	}
}
