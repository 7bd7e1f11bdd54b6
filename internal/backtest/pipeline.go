package backtest

import (
	"btc-backtest/internal/config"
	"btc-backtest/internal/indicator"
	"btc-backtest/internal/model"
	"btc-backtest/internal/sim"
	"btc-backtest/internal/strategy"
)

// RunPipeline wires the four stages end to end: simulate the path,
// compute the averages, run the strategy, and summarize. State is built
// fresh on every call; nothing persists across runs.
func RunPipeline(cfg *config.Config) (*Result, error) {
	simulator, err := sim.New(cfg.SimParams())
	if err != nil {
		return nil, err
	}
	points := simulator.Run()

	ind, err := indicator.NewEngine(cfg.Indicators.ShortWindow, cfg.Indicators.LongWindow)
	if err != nil {
		return nil, err
	}
	rows := ind.Compute(points)

	strat, err := strategy.New(cfg.Strategy.Name)
	if err != nil {
		return nil, err
	}
	port, err := model.NewPortfolio(cfg.Portfolio.InitialCash)
	if err != nil {
		return nil, err
	}

	return New().Run(rows, port, strat)
}
