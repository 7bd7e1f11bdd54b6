// Package sim generates synthetic price paths via geometric Brownian motion.
package sim

import (
	"errors"
	"math"
	"math/rand"

	"btc-backtest/internal/model"
)

// DefaultSeed reproduces the reference path on every run.
const DefaultSeed int64 = 123

// Params defines the GBM price process.
// Mu and Sigma are per-day drift and volatility of log returns.
type Params struct {
	Days         int
	InitialPrice float64
	Mu           float64
	Sigma        float64
	Seed         int64
}

func (p Params) Validate() error {
	if p.Days < 2 {
		return errors.New("days must be >= 2")
	}
	if p.InitialPrice <= 0 {
		return errors.New("initial_price must be > 0")
	}
	if p.Sigma < 0 {
		return errors.New("sigma must be >= 0")
	}
	return nil
}

// Simulator owns its random source. Independent simulators never share
// state, and the same seed always yields the same path.
type Simulator struct {
	params Params
	rng    *rand.Rand
}

func New(params Params) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		params: params,
		rng:    rand.New(rand.NewSource(params.Seed)),
	}, nil
}

// Run produces exactly Days price points. One standard-normal variate is
// drawn per day after the first, in day order; the draw order is part of
// the reproducibility contract.
func (s *Simulator) Run() []model.PricePoint {
	points := make([]model.PricePoint, s.params.Days)
	points[0] = model.PricePoint{Day: 1, Price: s.params.InitialPrice}

	drift := s.params.Mu - 0.5*s.params.Sigma*s.params.Sigma
	for i := 1; i < s.params.Days; i++ {
		shock := s.params.Sigma * s.rng.NormFloat64()
		points[i] = model.PricePoint{
			Day:   i + 1,
			Price: points[i-1].Price * math.Exp(drift+shock),
		}
	}
	return points
}
