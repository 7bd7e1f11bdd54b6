package backtest

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"btc-backtest/internal/model"
)

func WriteLedgerCSV(path string, ledger []LedgerEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"day",
		"price",
		"sma_short",
		"sma_long",
		"action",
		"holdings",
		"cash",
		"portfolio_value",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Day),
			fmtFloat(r.Price),
			fmtSMA(r.SMAShort),
			fmtSMA(r.SMALong),
			string(r.Action),
			fmtFloat(r.Holdings),
			fmtFloat(r.Cash),
			fmtFloat(r.PortfolioValue),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WritePriceCSV writes the raw day/price series, for the simulate-only path.
func WritePriceCSV(path string, points []model.PricePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"day", "price"}); err != nil {
		return err
	}
	for _, pt := range points {
		if err := w.Write([]string{strconv.Itoa(pt.Day), fmtFloat(pt.Price)}); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

// Warmup averages are written as an empty cell rather than "NaN".
func fmtSMA(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return fmtFloat(x)
}
