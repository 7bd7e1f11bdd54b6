package backtest

import (
	"errors"
	"math"
	"testing"

	"btc-backtest/internal/config"
	"btc-backtest/internal/indicator"
	"btc-backtest/internal/model"
	"btc-backtest/internal/strategy"
)

func runDefaults(t *testing.T) *Result {
	t.Helper()
	res, err := RunPipeline(config.Default())
	if err != nil {
		t.Fatalf("RunPipeline: %v", err)
	}
	return res
}

func TestRunSinglePositionInvariant(t *testing.T) {
	res := runDefaults(t)
	for _, entry := range res.Ledger {
		cashZero := entry.Cash == 0
		holdingsZero := entry.Holdings == 0
		if cashZero == holdingsZero {
			t.Fatalf("day %d: exactly one of cash/holdings must be zero, got cash=%v holdings=%v",
				entry.Day, entry.Cash, entry.Holdings)
		}
	}
}

func TestRunLedgerOrderedByDay(t *testing.T) {
	res := runDefaults(t)
	if len(res.Ledger) != 60 {
		t.Fatalf("expected 60 entries, got %d", len(res.Ledger))
	}
	for i, entry := range res.Ledger {
		if entry.Day != i+1 {
			t.Fatalf("entry %d has day %d, want %d", i, entry.Day, i+1)
		}
	}
}

// A trade at day i's price is value-neutral at that instant: marking the
// pre-trade state at the same price gives the recorded portfolio value.
// The rise-then-fall path forces one buy and one sell with windows 2/4.
func TestRunValueContinuityAcrossTrades(t *testing.T) {
	prices := []float64{100, 100, 100, 100, 110, 120, 130, 90, 80, 70}
	points := make([]model.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = model.PricePoint{Day: i + 1, Price: p}
	}

	ind, err := indicator.NewEngine(2, 4)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	port, err := model.NewPortfolio(10000)
	if err != nil {
		t.Fatalf("NewPortfolio: %v", err)
	}
	res, err := New().Run(ind.Compute(points), port, strategy.Crossover{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	traded := 0
	for i, entry := range res.Ledger {
		if entry.Action != model.ActionBuy && entry.Action != model.ActionSell {
			continue
		}
		if i == 0 {
			continue
		}
		traded++
		prev := res.Ledger[i-1]
		before := prev.Cash + prev.Holdings*entry.Price
		if math.Abs(before-entry.PortfolioValue) > 1e-6 {
			t.Fatalf("day %d %s: value before trade %v, after %v", entry.Day, entry.Action, before, entry.PortfolioValue)
		}
	}
	if traded != 2 {
		t.Fatalf("expected one buy and one sell, got %d trades", traded)
	}
}

// Changing prices after day k must not change anything recorded up to k.
func TestRunNoLookahead(t *testing.T) {
	base := []float64{100, 101, 99, 102, 103, 101, 104, 105, 103, 106}
	bumped := append([]float64(nil), base...)
	for i := 6; i < len(bumped); i++ {
		bumped[i] *= 5
	}

	run := func(prices []float64) []LedgerEntry {
		points := make([]model.PricePoint, len(prices))
		for i, p := range prices {
			points[i] = model.PricePoint{Day: i + 1, Price: p}
		}
		ind, err := indicator.NewEngine(2, 4)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		port, err := model.NewPortfolio(10000)
		if err != nil {
			t.Fatalf("NewPortfolio: %v", err)
		}
		res, err := New().Run(ind.Compute(points), port, strategy.Crossover{})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return res.Ledger
	}

	a := run(base)
	b := run(bumped)
	for i := 0; i < 6; i++ {
		if a[i].Action != b[i].Action {
			t.Fatalf("day %d action changed by future prices: %s vs %s", i+1, a[i].Action, b[i].Action)
		}
		if a[i].PortfolioValue != b[i].PortfolioValue {
			t.Fatalf("day %d value changed by future prices: %v vs %v", i+1, a[i].PortfolioValue, b[i].PortfolioValue)
		}
		sameAvg := func(x, y float64) bool {
			return (math.IsNaN(x) && math.IsNaN(y)) || x == y
		}
		if !sameAvg(a[i].SMAShort, b[i].SMAShort) || !sameAvg(a[i].SMALong, b[i].SMALong) {
			t.Fatalf("day %d averages changed by future prices", i+1)
		}
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	port, err := model.NewPortfolio(1000)
	if err != nil {
		t.Fatalf("NewPortfolio: %v", err)
	}

	if _, err := New().Run(nil, port, strategy.Crossover{}); err == nil {
		t.Fatal("expected error for empty rows")
	}
	if _, err := New().Run([]indicator.Row{{Day: 1, Price: 100}}, nil, strategy.Crossover{}); err == nil {
		t.Fatal("expected error for nil portfolio")
	}
	if _, err := New().Run([]indicator.Row{{Day: 1, Price: 100}}, port, nil); err == nil {
		t.Fatal("expected error for nil strategy")
	}
}

func TestRunNonPositivePriceIsPreconditionViolation(t *testing.T) {
	port, err := model.NewPortfolio(1000)
	if err != nil {
		t.Fatalf("NewPortfolio: %v", err)
	}
	rows := []indicator.Row{
		{Day: 1, Price: 100, SMAShort: math.NaN(), SMALong: math.NaN()},
		{Day: 2, Price: -1, SMAShort: math.NaN(), SMALong: math.NaN()},
	}
	_, err = New().Run(rows, port, strategy.Crossover{})
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("got %v, want ErrPrecondition", err)
	}
}

func TestRunPipelineReproducible(t *testing.T) {
	a := runDefaults(t)
	b := runDefaults(t)
	if len(a.Ledger) != len(b.Ledger) {
		t.Fatalf("ledger lengths differ: %d vs %d", len(a.Ledger), len(b.Ledger))
	}
	for i := range a.Ledger {
		if a.Ledger[i].Price != b.Ledger[i].Price || a.Ledger[i].Action != b.Ledger[i].Action {
			t.Fatalf("runs diverge at day %d", a.Ledger[i].Day)
		}
	}
	if a.Summary != b.Summary {
		t.Fatalf("summaries differ: %+v vs %+v", a.Summary, b.Summary)
	}
}
