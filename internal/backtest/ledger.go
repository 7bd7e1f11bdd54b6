package backtest

import "btc-backtest/internal/model"

// LedgerEntry is one day of output.
// This is the primary artifact for "what happened" in a backtest.
// Entries are append-only and ordered by day.
type LedgerEntry struct {
	Day   int
	Price float64

	// NaN while the corresponding window is still warming up.
	SMAShort float64
	SMALong  float64

	Action model.Action

	// Post-transition state; exactly one of Holdings/Cash is non-zero.
	Holdings float64
	Cash     float64

	// Cash + Holdings*Price at this day's price.
	PortfolioValue float64
}

type Result struct {
	Ledger  []LedgerEntry
	Summary Summary
}
