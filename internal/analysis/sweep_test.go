package analysis

import (
	"testing"

	"btc-backtest/internal/config"
)

func TestRankWindowsSortedByReturn(t *testing.T) {
	pairs := []WindowPair{{Short: 5, Long: 20}, {Short: 7, Long: 30}, {Short: 3, Long: 10}}
	ranked := RankWindows(config.Default(), pairs)
	if len(ranked) != len(pairs) {
		t.Fatalf("expected %d results, got %d", len(pairs), len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].ReturnPct < ranked[i].ReturnPct {
			t.Fatalf("rankings not descending: %v before %v", ranked[i-1].ReturnPct, ranked[i].ReturnPct)
		}
	}
}

func TestRankWindowsSkipsInvalidPairs(t *testing.T) {
	pairs := []WindowPair{{Short: 30, Long: 7}, {Short: 7, Long: 30}}
	ranked := RankWindows(config.Default(), pairs)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 valid result, got %d", len(ranked))
	}
	if ranked[0].Short != 7 || ranked[0].Long != 30 {
		t.Fatalf("unexpected surviving pair: %+v", ranked[0].WindowPair)
	}
}

// Same seed, same path: repeated sweeps agree exactly.
func TestRankWindowsReproducible(t *testing.T) {
	pairs := []WindowPair{{Short: 5, Long: 20}, {Short: 7, Long: 30}}
	a := RankWindows(config.Default(), pairs)
	b := RankWindows(config.Default(), pairs)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
