package game

import (
	"fmt"

	"github.com/lixenwraith/loc-idle/clock"
	"github.com/lixenwraith/loc-idle/config"
	"github.com/shopspring/decimal"
)

// Game owns the state and catalog and applies events to them
// Not safe for concurrent use; the engine loop is the only writer
type Game struct {
	bal     config.Balance
	clk     clock.Clock
	st      State
	catalog Catalog
}

// NewGame creates a game whose time cursor starts at clk.Now()
func NewGame(b config.Balance, clk clock.Clock) *Game {
	return &Game{
		bal:     b,
		clk:     clk,
		st:      NewState(b, clk.Now()),
		catalog: NewCatalog(),
	}
}

// State returns a copy of the current state
func (g *Game) State() State {
	return g.st
}

// Catalog returns a copy of the catalog
func (g *Game) Catalog() Catalog {
	return g.catalog.clone()
}

// Update applies ev and reports whether the state changed
// Unaffordable or locked purchases are ignored, not errors
func (g *Game) Update(ev Event) bool {
	switch ev.Kind {
	case EventTick:
		g.tick()
		return true

	case EventWriteCode:
		g.st.LOCs = g.st.LOCs.Add(decimal.NewFromInt(1))
		g.st.AvailableFunds = g.st.AvailableFunds.Add(g.st.LOCPrice)
		return true

	case EventHireCoder:
		if !g.st.CanHireCoder() {
			return false
		}
		g.st.AvailableFunds = g.st.AvailableFunds.Sub(g.st.CoderCost)
		g.st.Coders = g.st.Coders.Add(decimal.NewFromInt(1))
		g.st.CoderCost = g.st.CoderCost.Mul(g.bal.CoderCostGrowth)
		return true

	case EventUpgrade:
		if !g.CanUpgrade(ev.Index) {
			return false
		}
		g.catalog[ev.Index].Def.Apply(&g.st)
		g.catalog[ev.Index].Available = false
		return true

	case EventAIHype:
		if !g.st.CanBuyAIHype() {
			return false
		}
		g.st.AvailableFunds = g.st.AvailableFunds.Sub(g.st.AIHypeCost)
		g.st.AIHype = g.st.AIHype.Add(decimal.NewFromInt(1))
		g.st.AIHypeCost = g.st.AIHypeCost.Mul(g.bal.AIHypeCostGrowth)
		return true

	default:
		panic(fmt.Sprintf("game: unknown event kind %d", ev.Kind))
	}
}

// CanUpgrade reports whether Upgrade(index) would apply
// Panics on an index outside the catalog
func (g *Game) CanUpgrade(index int) bool {
	return canUpgrade(g.st, g.catalog, index)
}

func canUpgrade(s State, c Catalog, index int) bool {
	if index < 0 || index >= len(c) {
		panic(fmt.Sprintf("game: upgrade index %d out of range [0,%d)", index, len(c)))
	}
	u := c[index]
	return u.Available && u.Def.Unlocked(s)
}

// tick advances the time cursor and accrues idle production
// Rates are rebuilt from current quantities before the delta is applied
func (g *Game) tick() {
	now := g.clk.Now()
	dt := now.Sub(g.st.LastTime)
	if dt < 0 {
		dt = 0
	}
	g.st.DeltaTime = dt
	g.st.TotalTime += dt
	g.st.LastTime = now

	linesPerCoder := g.st.LOCPerSecBase.Mul(g.st.CoderLevel)
	g.st.LOCPerSec = g.st.Coders.Mul(linesPerCoder).Mul(g.st.LOCMultiplier)

	hype := g.bal.AIHypeRate.Mul(g.st.AIHype)
	g.st.LOCPrice = g.bal.BaseLOCPrice.Add(hype).Mul(g.st.LOCPriceMultiplier)

	delta := g.st.LOCPerSec.Mul(seconds(dt))
	g.st.LOCs = g.st.LOCs.Add(delta)
	g.st.AvailableFunds = g.st.AvailableFunds.Add(delta.Mul(g.st.LOCPrice))
}

// Snapshot is a read-only copy of the game for rendering
type Snapshot struct {
	State
	Upgrades Catalog
}

// Snapshot copies the state and catalog
func (g *Game) Snapshot() Snapshot {
	return Snapshot{State: g.st, Upgrades: g.catalog.clone()}
}

// CanUpgrade reports whether the snapshot's upgrade at index is purchasable
func (s Snapshot) CanUpgrade(index int) bool {
	return canUpgrade(s.State, s.Upgrades, index)
}
