package strategy

import "btc-backtest/internal/model"

// Crossover trades the relative order of the short and long averages:
// short above long while in cash buys (golden cross), short below long
// while invested sells (death cross). Only strict inequality trades;
// equal averages hold, so a flat tape never oscillates. Warmup days
// (either average NaN) always hold.
type Crossover struct{}

func (Crossover) Name() string { return "crossover" }

func (Crossover) Decide(ctx Context) model.Action {
	row := ctx.Row
	if !row.HasSignal() {
		return model.ActionHold
	}
	switch {
	case row.SMAShort > row.SMALong && ctx.Portfolio.Position == model.PositionCash:
		return model.ActionBuy
	case row.SMAShort < row.SMALong && ctx.Portfolio.Position == model.PositionInvested:
		return model.ActionSell
	default:
		return model.ActionHold
	}
}
