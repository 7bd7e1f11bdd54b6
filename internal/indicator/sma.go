// Package indicator computes trailing-window statistics over a price path.
package indicator

import (
	"errors"
	"math"

	"btc-backtest/internal/model"
)

// Row extends a price point with the short and long moving averages.
// An average is NaN until its trailing window is full.
type Row struct {
	Day      int
	Price    float64
	SMAShort float64
	SMALong  float64
}

// HasSignal reports whether both averages are defined for this row.
func (r Row) HasSignal() bool {
	return !math.IsNaN(r.SMAShort) && !math.IsNaN(r.SMALong)
}

// Aggregator rolls a trailing window over x, returning a slice aligned
// to the input with NaN for warmup positions.
type Aggregator interface {
	Name() string
	Roll(x []float64, window int) []float64
}

// TrailingMean is the default aggregator: a running-sum simple moving
// average. The sum accumulates in input order, so values can differ from
// a naive per-window sum by float rounding.
type TrailingMean struct{}

func (TrailingMean) Name() string { return "sma" }

func (TrailingMean) Roll(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	var sum float64
	for i := range x {
		sum += x[i]
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		if i >= window {
			sum -= x[i-window]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// Engine computes one Row per input day. Agg defaults to TrailingMean
// when nil.
type Engine struct {
	ShortWindow int
	LongWindow  int
	Agg         Aggregator
}

func NewEngine(shortWindow, longWindow int) (*Engine, error) {
	e := &Engine{ShortWindow: shortWindow, LongWindow: longWindow, Agg: TrailingMean{}}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) Validate() error {
	if e.ShortWindow <= 0 {
		return errors.New("window_short must be > 0")
	}
	if e.LongWindow <= 0 {
		return errors.New("window_long must be > 0")
	}
	if e.ShortWindow >= e.LongWindow {
		return errors.New("window_short must be < window_long")
	}
	return nil
}

// Compute derives the indicator rows for the full path. Each value only
// depends on prices up to and including its own day.
func (e *Engine) Compute(points []model.PricePoint) []Row {
	agg := e.Agg
	if agg == nil {
		agg = TrailingMean{}
	}

	prices := make([]float64, len(points))
	for i, pt := range points {
		prices[i] = pt.Price
	}
	shortMA := agg.Roll(prices, e.ShortWindow)
	longMA := agg.Roll(prices, e.LongWindow)

	rows := make([]Row, len(points))
	for i, pt := range points {
		rows[i] = Row{
			Day:      pt.Day,
			Price:    pt.Price,
			SMAShort: shortMA[i],
			SMALong:  longMA[i],
		}
	}
	return rows
}
