package backtest

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// WriteTable renders the per-day ledger as a fixed-width console table.
// Warmup averages print as "NaN". Column headers carry the configured
// window sizes, e.g. SMA_7 / SMA_30.
func WriteTable(w io.Writer, ledger []LedgerEntry, shortWindow, longWindow int) {
	smaShortHdr := fmt.Sprintf("SMA_%d", shortWindow)
	smaLongHdr := fmt.Sprintf("SMA_%d", longWindow)

	fmt.Fprintf(w, "%-5s %-10s %-10s %-10s %-10s %-15s %-15s %-15s\n",
		"Day", "Price", smaShortHdr, smaLongHdr, "Action", "Portfolio Value", "Holdings", "Cash")
	fmt.Fprintln(w, strings.Repeat("-", 95))

	for _, r := range ledger {
		fmt.Fprintf(w, "%-5d $%-9.2f $%-9s $%-9s %-10s $%-14.2f %-15.4f $%-14.2f\n",
			r.Day,
			r.Price,
			fmtAvg(r.SMAShort),
			fmtAvg(r.SMALong),
			string(r.Action),
			r.PortfolioValue,
			r.Holdings,
			r.Cash,
		)
	}
}

// WriteSummary renders the boxed end-of-run performance block.
func WriteSummary(w io.Writer, s Summary) {
	rule := strings.Repeat("=", 30)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "FINAL PERFORMANCE SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Initial Portfolio Value: $%.2f\n", s.InitialCash)
	fmt.Fprintf(w, "Final Portfolio Value:   $%.2f\n", s.FinalValue)
	fmt.Fprintf(w, "Return:                  %.2f%%\n", s.ReturnPct)
	fmt.Fprintln(w, rule)
}

func fmtAvg(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", x)
}
