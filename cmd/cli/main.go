package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"btc-backtest/internal/analysis"
	"btc-backtest/internal/backtest"
	"btc-backtest/internal/config"
	"btc-backtest/internal/sim"
	"btc-backtest/internal/util"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backtest":
		cmdBacktest(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli backtest [--config config.yaml] [--out results/ledger.csv]")
	fmt.Println("  cli simulate [--config config.yaml] [--out results/prices.csv]")
	fmt.Println("  cli sweep    [--config config.yaml] --windows 5:20,7:30,10:40")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --config, the reference defaults run (60 days, seed 123)")
	fmt.Println("  - backtest prints the per-day table and final summary, plus optional CSV")
	fmt.Println("  - sweep reranks window pairs over the identical seeded path")
}

func cmdBacktest(args []string) {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional path to write ledger CSV")
	_ = fs.Parse(args)

	log := util.NewLogger(os.Getenv("LOG_LEVEL"))
	cfg := mustConfig(*cfgPath)

	fmt.Printf("Simulating %d days of price data...\n", cfg.Simulation.Days)

	res, err := backtest.RunPipeline(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("backtest failed")
	}

	backtest.WriteTable(os.Stdout, res.Ledger, cfg.Indicators.ShortWindow, cfg.Indicators.LongWindow)
	backtest.WriteSummary(os.Stdout, res.Summary)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output dir")
		}
		if err := backtest.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
			log.Fatal().Err(err).Msg("write ledger CSV")
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(res.Ledger), *outPath)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional path to write price CSV")
	_ = fs.Parse(args)

	log := util.NewLogger(os.Getenv("LOG_LEVEL"))
	cfg := mustConfig(*cfgPath)

	simulator, err := sim.New(cfg.SimParams())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid simulation parameters")
	}
	points := simulator.Run()

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output dir")
		}
		if err := backtest.WritePriceCSV(*outPath, points); err != nil {
			log.Fatal().Err(err).Msg("write price CSV")
		}
		fmt.Printf("Wrote %d rows to %s\n", len(points), *outPath)
		return
	}

	for _, pt := range points {
		fmt.Printf("%-5d $%.2f\n", pt.Day, pt.Price)
	}
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	windows := fs.String("windows", "", "Comma-separated short:long pairs, e.g. 5:20,7:30")
	_ = fs.Parse(args)

	log := util.NewLogger(os.Getenv("LOG_LEVEL"))
	cfg := mustConfig(*cfgPath)

	pairs, err := parseWindowPairs(*windows)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid --windows")
	}

	ranked := analysis.RankWindows(cfg, pairs)
	fmt.Printf("%-4s %-8s %-8s %-10s %-14s %-7s\n", "rank", "short", "long", "return%", "final value", "trades")
	for i, r := range ranked {
		fmt.Printf("%-4d %-8d %-8d %-10.2f %-14.2f %-7d\n",
			i+1, r.Short, r.Long, r.ReturnPct, r.FinalValue, r.Trades)
	}
}

func mustConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func parseWindowPairs(s string) ([]analysis.WindowPair, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("at least one short:long pair is required")
	}
	parts := strings.Split(s, ",")
	out := make([]analysis.WindowPair, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		halves := strings.Split(p, ":")
		if len(halves) != 2 {
			return nil, fmt.Errorf("invalid pair %q, expected short:long", p)
		}
		short, err := strconv.Atoi(strings.TrimSpace(halves[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid short window in %q", p)
		}
		long, err := strconv.Atoi(strings.TrimSpace(halves[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid long window in %q", p)
		}
		out = append(out, analysis.WindowPair{Short: short, Long: long})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one short:long pair is required")
	}
	return out, nil
}
