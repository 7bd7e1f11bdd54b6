package backtest

import "errors"

// Summary is derived once from the last ledger entry.
type Summary struct {
	InitialCash float64
	FinalValue  float64
	ReturnPct   float64
}

// NewSummary computes the total return over the run. An empty ledger is
// a configuration error (no days simulated), not a numeric one.
func NewSummary(ledger []LedgerEntry, initialCash float64) (Summary, error) {
	if len(ledger) == 0 {
		return Summary{}, errors.New("empty ledger: no days simulated")
	}
	final := ledger[len(ledger)-1].PortfolioValue
	return Summary{
		InitialCash: initialCash,
		FinalValue:  final,
		ReturnPct:   (final - initialCash) / initialCash * 100,
	}, nil
}
