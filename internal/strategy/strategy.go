package strategy

import (
	"btc-backtest/internal/indicator"
	"btc-backtest/internal/model"
)

// Context is everything a strategy may look at for one day. Only the
// current row is exposed, so a strategy cannot look ahead in the path.
type Context struct {
	Index     int
	Row       indicator.Row
	Portfolio *model.Portfolio
}

type Strategy interface {
	Name() string
	Decide(ctx Context) model.Action
}
