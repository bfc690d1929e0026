package game

import "github.com/shopspring/decimal"

// UpgradeKind identifies a catalog entry
type UpgradeKind uint8

const (
	UpgradeOpenNano UpgradeKind = iota
	UpgradeDrinkCoffee
	UpgradeLearnRust
	UpgradeSwitchToVim
)

// UpgradeDef is an immutable catalog row
// Unlock and effect are plain data interpreted by Unlocked and Apply
type UpgradeDef struct {
	Kind        UpgradeKind
	Name        string
	Description string
	Required    string

	// MinLOCs is the accumulated line count needed to buy the upgrade
	MinLOCs decimal.Decimal

	// BaseDelta is added to LOCPerSecBase
	BaseDelta decimal.Decimal
	// LevelDelta is added to CoderLevel
	LevelDelta decimal.Decimal
	// LOCMultiplierFactor scales LOCMultiplier, zero leaves it unchanged
	LOCMultiplierFactor decimal.Decimal
	// PriceMultiplierFactor scales LOCPriceMultiplier, zero leaves it unchanged
	PriceMultiplierFactor decimal.Decimal
}

// Unlocked reports whether s satisfies the upgrade requirement
func (d UpgradeDef) Unlocked(s State) bool {
	return s.LOCs.GreaterThanOrEqual(d.MinLOCs)
}

// Apply mutates s with the upgrade's effect
func (d UpgradeDef) Apply(s *State) {
	s.LOCPerSecBase = s.LOCPerSecBase.Add(d.BaseDelta)
	s.CoderLevel = s.CoderLevel.Add(d.LevelDelta)
	s.LOCMultiplier = scale(s.LOCMultiplier, d.LOCMultiplierFactor)
	s.LOCPriceMultiplier = scale(s.LOCPriceMultiplier, d.PriceMultiplierFactor)
}

func scale(v, factor decimal.Decimal) decimal.Decimal {
	if factor.IsZero() {
		return v
	}
	return v.Mul(factor)
}

// Upgrade is a catalog entry with its purchase flag
// Available goes false exactly once and never returns
type Upgrade struct {
	Def       UpgradeDef
	Available bool
}

// Catalog is the ordered list of upgrades
type Catalog []Upgrade

// upgradeDefs is the stock catalog, in display order
var upgradeDefs = []UpgradeDef{
	{
		Kind:        UpgradeOpenNano,
		Name:        "Open nano",
		Description: "Start writing code",
		Required:    "10 LOCs",
		MinLOCs:     decimal.NewFromInt(10),
		BaseDelta:   decimal.NewFromInt(1),
		LevelDelta:  decimal.NewFromInt(1),
	},
	{
		Kind:        UpgradeDrinkCoffee,
		Name:        "Drink Coffee",
		Description: "Increase LOC/s by 5",
		Required:    "20 LOCs",
		MinLOCs:     decimal.NewFromInt(20),
		BaseDelta:   decimal.NewFromInt(5),
	},
	{
		Kind:                  UpgradeLearnRust,
		Name:                  "Learn Rust",
		Description:           "Divide LOC/s by 2 but increase LOC cost by 3",
		Required:              "100 LOCs",
		MinLOCs:               decimal.NewFromInt(100),
		LevelDelta:            decimal.NewFromInt(1),
		LOCMultiplierFactor:   decimal.RequireFromString("0.5"),
		PriceMultiplierFactor: decimal.NewFromInt(3),
	},
	{
		Kind:                UpgradeSwitchToVim,
		Name:                "Switch to Vim",
		Description:         "Multiply LOC/s by 2",
		Required:            "1000 LOCs",
		MinLOCs:             decimal.NewFromInt(1000),
		LevelDelta:          decimal.NewFromInt(1),
		LOCMultiplierFactor: decimal.NewFromInt(2),
	},
}

// NewCatalog returns a fresh catalog with every upgrade available
func NewCatalog() Catalog {
	c := make(Catalog, len(upgradeDefs))
	for i, d := range upgradeDefs {
		c[i] = Upgrade{Def: d, Available: true}
	}
	return c
}

// Visible returns catalog indices of upgrades not yet bought, in display order
func (c Catalog) Visible() []int {
	idx := make([]int, 0, len(c))
	for i, u := range c {
		if u.Available {
			idx = append(idx, i)
		}
	}
	return idx
}

// clone copies the catalog so snapshots do not alias the live flags
func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}
