package models

// BacktestResponse represents the response from a backtest run
type BacktestResponse struct {
	Status  string          `json:"status"`
	Summary BacktestSummary `json:"summary"`
	Ledger  []LedgerRow     `json:"ledger,omitempty"`
}

// BacktestSummary contains aggregated backtest results
type BacktestSummary struct {
	InitialCash float64 `json:"initial_cash"`
	FinalValue  float64 `json:"final_value"`
	ReturnPct   float64 `json:"return_pct"`
	TotalDays   int     `json:"total_days"`
	Trades      int     `json:"trades"`
}

// LedgerRow represents one day in the backtest ledger.
// The averages are pointers so warmup days serialize as null.
type LedgerRow struct {
	Day            int      `json:"day"`
	Price          float64  `json:"price"`
	SMAShort       *float64 `json:"sma_short"`
	SMALong        *float64 `json:"sma_long"`
	Action         string   `json:"action"` // "BUY", "SELL", "HOLD"
	Holdings       float64  `json:"holdings"`
	Cash           float64  `json:"cash"`
	PortfolioValue float64  `json:"portfolio_value"`
}

// SweepResponse represents the response from a window sweep
type SweepResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked window combination
type Ranking struct {
	Rank        int     `json:"rank"`
	ShortWindow int     `json:"window_short"`
	LongWindow  int     `json:"window_long"`
	ReturnPct   float64 `json:"return_pct"`
	FinalValue  float64 `json:"final_value"`
	Trades      int     `json:"trades"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable code plus a human-readable message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
