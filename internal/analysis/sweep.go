// Package analysis compares backtest variations over the same seeded path.
package analysis

import (
	"sort"

	"btc-backtest/internal/backtest"
	"btc-backtest/internal/config"
	"btc-backtest/internal/model"
)

// WindowPair is one short/long window combination to evaluate.
type WindowPair struct {
	Short int
	Long  int
}

type WindowResult struct {
	WindowPair
	ReturnPct  float64
	FinalValue float64
	Trades     int
}

// RankWindows reruns the full pipeline for each window pair and sorts
// the results descending by return. The seed is unchanged, so every
// variation sees the identical price path. Invalid pairs are skipped.
func RankWindows(base *config.Config, pairs []WindowPair) []WindowResult {
	out := make([]WindowResult, 0, len(pairs))
	for _, pr := range pairs {
		c := *base
		c.Indicators.ShortWindow = pr.Short
		c.Indicators.LongWindow = pr.Long
		if err := c.Validate(); err != nil {
			continue
		}
		res, err := backtest.RunPipeline(&c)
		if err != nil {
			continue
		}
		out = append(out, WindowResult{
			WindowPair: pr,
			ReturnPct:  res.Summary.ReturnPct,
			FinalValue: res.Summary.FinalValue,
			Trades:     countTrades(res.Ledger),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReturnPct > out[j].ReturnPct
	})
	return out
}

func countTrades(ledger []backtest.LedgerEntry) int {
	n := 0
	for _, r := range ledger {
		if r.Action == model.ActionBuy || r.Action == model.ActionSell {
			n++
		}
	}
	return n
}
