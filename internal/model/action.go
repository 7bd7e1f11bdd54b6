package model

// Action is the strategy decision for a single day.
// Keep these values stable; they are intended for CSV and JSON output.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)
