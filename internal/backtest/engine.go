package backtest

import (
	"errors"
	"fmt"

	"btc-backtest/internal/indicator"
	"btc-backtest/internal/model"
	"btc-backtest/internal/strategy"
)

// ErrPrecondition marks an internal invariant broken despite upstream
// validation, such as a non-positive price reaching the engine.
var ErrPrecondition = errors.New("precondition violation")

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes the strategy over the indicator rows, one decision per
// day in day order. A BUY or SELL executes at the same day's price used
// for valuation; no execution lag is modeled.
func (e *Engine) Run(rows []indicator.Row, port *model.Portfolio, strat strategy.Strategy) (*Result, error) {
	if port == nil {
		return nil, fmt.Errorf("portfolio is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no indicator rows")
	}

	initialCash := port.Cash
	ledger := make([]LedgerEntry, 0, len(rows))

	for idx, row := range rows {
		if row.Price <= 0 {
			return nil, fmt.Errorf("day %d: price %v: %w", row.Day, row.Price, ErrPrecondition)
		}

		action := strat.Decide(strategy.Context{Index: idx, Row: row, Portfolio: port})
		switch action {
		case model.ActionBuy:
			if err := port.Buy(row.Price); err != nil {
				return nil, fmt.Errorf("day %d: %w", row.Day, err)
			}
		case model.ActionSell:
			if err := port.Sell(row.Price); err != nil {
				return nil, fmt.Errorf("day %d: %w", row.Day, err)
			}
		}

		ledger = append(ledger, LedgerEntry{
			Day:            row.Day,
			Price:          row.Price,
			SMAShort:       row.SMAShort,
			SMALong:        row.SMALong,
			Action:         action,
			Holdings:       port.Holdings,
			Cash:           port.Cash,
			PortfolioValue: port.Value(row.Price),
		})
	}

	summary, err := NewSummary(ledger, initialCash)
	if err != nil {
		return nil, err
	}
	return &Result{Ledger: ledger, Summary: summary}, nil
}
