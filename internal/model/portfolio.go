package model

import (
	"errors"
	"fmt"
)

// Position says which side of the market the portfolio is on.
type Position string

const (
	PositionCash     Position = "CASH"
	PositionInvested Position = "INVESTED"
)

var (
	ErrNonPositivePrice = errors.New("non-positive price")
	ErrAlreadyInvested  = errors.New("already invested")
	ErrNotInvested      = errors.New("not invested")
)

// Portfolio is the single-asset, all-in/all-out portfolio state.
// Exactly one of Cash and Holdings is non-zero at any time: the
// strategy is always fully in cash or fully invested, never partial.
type Portfolio struct {
	Position Position
	Cash     float64
	Holdings float64
}

func NewPortfolio(initialCash float64) (*Portfolio, error) {
	if initialCash <= 0 {
		return nil, errors.New("initial_cash must be > 0")
	}
	return &Portfolio{Position: PositionCash, Cash: initialCash}, nil
}

// Buy converts the entire cash balance into holdings at price.
func (p *Portfolio) Buy(price float64) error {
	if price <= 0 {
		return fmt.Errorf("buy at %v: %w", price, ErrNonPositivePrice)
	}
	if p.Position != PositionCash {
		return fmt.Errorf("buy: %w", ErrAlreadyInvested)
	}
	p.Holdings = p.Cash / price
	p.Cash = 0
	p.Position = PositionInvested
	return nil
}

// Sell liquidates the entire holding back into cash at price.
func (p *Portfolio) Sell(price float64) error {
	if price <= 0 {
		return fmt.Errorf("sell at %v: %w", price, ErrNonPositivePrice)
	}
	if p.Position != PositionInvested {
		return fmt.Errorf("sell: %w", ErrNotInvested)
	}
	p.Cash = p.Holdings * price
	p.Holdings = 0
	p.Position = PositionCash
	return nil
}

// Value marks the portfolio at the given price.
func (p *Portfolio) Value(price float64) float64 {
	return p.Cash + p.Holdings*price
}
