package main

import (
	"flag"
	"fmt"
	"os"

	"btc-backtest/internal/backtest"
	"btc-backtest/internal/config"
	"btc-backtest/internal/util"
)

// Demo:
// - Build the reference configuration (60 days, seed 123)
// - Run the full pipeline: GBM path -> moving averages -> crossover strategy
// - Print the per-day ledger table and the final performance summary
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV")
	flag.Parse()

	log := util.NewLogger(os.Getenv("LOG_LEVEL"))

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
		cfg = loaded
	}

	fmt.Printf("Simulating %d days of price data...\n", cfg.Simulation.Days)

	res, err := backtest.RunPipeline(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("backtest failed")
	}

	backtest.WriteTable(os.Stdout, res.Ledger, cfg.Indicators.ShortWindow, cfg.Indicators.LongWindow)
	backtest.WriteSummary(os.Stdout, res.Summary)

	if *outCSV != "" {
		if err := backtest.WriteLedgerCSV(*outCSV, res.Ledger); err != nil {
			log.Fatal().Err(err).Msg("write ledger CSV")
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
