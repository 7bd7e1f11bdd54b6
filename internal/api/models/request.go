package models

// BacktestRequest is the POST /api/v1/backtest body. Every field is
// optional; zero values fall back to the reference defaults, so an
// empty body reruns the reference backtest.
type BacktestRequest struct {
	Simulation SimulationConfig `json:"simulation,omitempty"`
	Indicators IndicatorConfig  `json:"indicators,omitempty"`
	Strategy   StrategyConfig   `json:"strategy,omitempty"`
	Portfolio  PortfolioConfig  `json:"portfolio,omitempty"`
	Options    BacktestOptions  `json:"options,omitempty"`
}

// SimulationConfig defines the price process parameters
type SimulationConfig struct {
	Days         int     `json:"days,omitempty"`
	InitialPrice float64 `json:"initial_price,omitempty"`
	Mu           float64 `json:"mu,omitempty"`
	Sigma        float64 `json:"sigma,omitempty"`
	Seed         int64   `json:"seed,omitempty"`
}

// IndicatorConfig defines the moving-average windows
type IndicatorConfig struct {
	ShortWindow int `json:"window_short,omitempty"`
	LongWindow  int `json:"window_long,omitempty"`
}

// StrategyConfig selects the strategy and its parameters
type StrategyConfig struct {
	Name   string                 `json:"name,omitempty"`
	Params map[string]interface{} `json:"params,omitempty"`
}

// PortfolioConfig defines the starting bankroll
type PortfolioConfig struct {
	InitialCash float64 `json:"initial_cash,omitempty"`
}

// BacktestOptions contains optional backtest parameters
type BacktestOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// SweepRequest asks for a ranking of window combinations over the same path
type SweepRequest struct {
	Simulation SimulationConfig `json:"simulation,omitempty"`
	Portfolio  PortfolioConfig  `json:"portfolio,omitempty"`
	Windows    []WindowPair     `json:"windows" binding:"required"`
}

// WindowPair is one short/long window combination
type WindowPair struct {
	Short int `json:"short" binding:"required"`
	Long  int `json:"long" binding:"required"`
}
