package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidBalance is returned when a balance value would break game invariants
var ErrInvalidBalance = errors.New("invalid balance")

// Balance holds the economy constants a new game is built from
type Balance struct {
	// InitialCoderCost is the price of the first coder
	InitialCoderCost decimal.Decimal
	// CoderCostGrowth multiplies the coder price after every hire
	CoderCostGrowth decimal.Decimal

	// InitialAIHypeCost is the price of the first hype level
	InitialAIHypeCost decimal.Decimal
	// AIHypeCostGrowth multiplies the hype price after every purchase
	AIHypeCostGrowth decimal.Decimal

	// BaseLOCPrice is the sale price of one line before hype and multipliers
	BaseLOCPrice decimal.Decimal
	// AIHypeRate is the price added per hype level
	AIHypeRate decimal.Decimal
}

// DefaultBalance returns the stock economy
func DefaultBalance() Balance {
	return Balance{
		InitialCoderCost:  decimal.RequireFromString("5.0"),
		CoderCostGrowth:   decimal.RequireFromString("1.7"),
		InitialAIHypeCost: decimal.NewFromInt(100),
		AIHypeCostGrowth:  decimal.NewFromInt(2),
		BaseLOCPrice:      decimal.RequireFromString("0.50"),
		AIHypeRate:        decimal.RequireFromString("1.0"),
	}
}

// Validate checks that costs and prices are non-negative and growth never shrinks a cost
func (b Balance) Validate() error {
	nonNegative := []struct {
		name string
		v    decimal.Decimal
	}{
		{"initial_coder_cost", b.InitialCoderCost},
		{"initial_ai_hype_cost", b.InitialAIHypeCost},
		{"base_loc_price", b.BaseLOCPrice},
		{"ai_hype_rate", b.AIHypeRate},
	}
	for _, f := range nonNegative {
		if f.v.IsNegative() {
			return fmt.Errorf("%w: %s must be >= 0, got %s", ErrInvalidBalance, f.name, f.v)
		}
	}

	one := decimal.NewFromInt(1)
	if b.CoderCostGrowth.LessThan(one) {
		return fmt.Errorf("%w: coder_cost_growth must be >= 1, got %s", ErrInvalidBalance, b.CoderCostGrowth)
	}
	if b.AIHypeCostGrowth.LessThan(one) {
		return fmt.Errorf("%w: ai_hype_cost_growth must be >= 1, got %s", ErrInvalidBalance, b.AIHypeCostGrowth)
	}
	return nil
}
