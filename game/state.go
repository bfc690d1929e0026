package game

import (
	"time"

	"github.com/lixenwraith/loc-idle/config"
	"github.com/shopspring/decimal"
)

// State is the mutable game record
// All quantities are decimals so long idle runs do not drift
type State struct {
	LOCs           decimal.Decimal
	AvailableFunds decimal.Decimal

	Coders     decimal.Decimal
	CoderLevel decimal.Decimal
	CoderCost  decimal.Decimal

	AIHype     decimal.Decimal
	AIHypeCost decimal.Decimal

	// LOCPrice and LOCPerSec are derived, recomputed only on Tick
	LOCPrice      decimal.Decimal
	LOCPerSec     decimal.Decimal
	LOCPerSecBase decimal.Decimal

	LOCMultiplier      decimal.Decimal
	LOCPriceMultiplier decimal.Decimal

	// Time cursor
	LastTime  time.Time
	DeltaTime time.Duration
	TotalTime time.Duration
}

// NewState returns the start-of-game record
func NewState(b config.Balance, now time.Time) State {
	return State{
		CoderCost:          b.InitialCoderCost,
		AIHypeCost:         b.InitialAIHypeCost,
		LOCPrice:           b.BaseLOCPrice,
		LOCMultiplier:      decimal.NewFromInt(1),
		LOCPriceMultiplier: decimal.NewFromInt(1),
		LastTime:           now,
	}
}

// CanHireCoder reports whether funds cover the next coder
func (s State) CanHireCoder() bool {
	return s.AvailableFunds.GreaterThanOrEqual(s.CoderCost)
}

// CanBuyAIHype reports whether funds cover the next hype level
func (s State) CanBuyAIHype() bool {
	return s.AvailableFunds.GreaterThanOrEqual(s.AIHypeCost)
}

// RevenuePerSec is the idle income at current rates
func (s State) RevenuePerSec() decimal.Decimal {
	return s.LOCPerSec.Mul(s.LOCPrice)
}

// FPS is the tick rate implied by the last tick interval, 0 before the first tick
func (s State) FPS() float64 {
	if s.DeltaTime <= 0 {
		return 0
	}
	return 1 / s.DeltaTime.Seconds()
}

// seconds converts d to an exact decimal number of seconds
func seconds(d time.Duration) decimal.Decimal {
	return decimal.New(d.Nanoseconds(), -9)
}
