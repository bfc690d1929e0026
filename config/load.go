package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// balanceFile mirrors Balance with optional string fields
// Values stay strings until parsed so no float rounding happens on the way in
type balanceFile struct {
	InitialCoderCost  *string `yaml:"initial_coder_cost"`
	CoderCostGrowth   *string `yaml:"coder_cost_growth"`
	InitialAIHypeCost *string `yaml:"initial_ai_hype_cost"`
	AIHypeCostGrowth  *string `yaml:"ai_hype_cost_growth"`
	BaseLOCPrice      *string `yaml:"base_loc_price"`
	AIHypeRate        *string `yaml:"ai_hype_rate"`
}

// Environment variable names for balance overrides
const (
	EnvInitialCoderCost  = "LOC_IDLE_INITIAL_CODER_COST"
	EnvCoderCostGrowth   = "LOC_IDLE_CODER_COST_GROWTH"
	EnvInitialAIHypeCost = "LOC_IDLE_INITIAL_AI_HYPE_COST"
	EnvAIHypeCostGrowth  = "LOC_IDLE_AI_HYPE_COST_GROWTH"
	EnvBaseLOCPrice      = "LOC_IDLE_BASE_LOC_PRICE"
	EnvAIHypeRate        = "LOC_IDLE_AI_HYPE_RATE"
)

// Load builds a Balance from defaults, an optional YAML file and the environment
// An empty path skips the file. The result is validated
func Load(path string) (Balance, error) {
	b := DefaultBalance()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Balance{}, fmt.Errorf("balance file: %w", err)
		}
		if err := b.applyYAML(data); err != nil {
			return Balance{}, fmt.Errorf("balance file %s: %w", path, err)
		}
	}

	if err := b.applyEnv(os.Getenv); err != nil {
		return Balance{}, err
	}

	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// applyYAML overlays fields present in data
func (b *Balance) applyYAML(data []byte) error {
	var f balanceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	overrides := []struct {
		name string
		src  *string
		dst  *decimal.Decimal
	}{
		{"initial_coder_cost", f.InitialCoderCost, &b.InitialCoderCost},
		{"coder_cost_growth", f.CoderCostGrowth, &b.CoderCostGrowth},
		{"initial_ai_hype_cost", f.InitialAIHypeCost, &b.InitialAIHypeCost},
		{"ai_hype_cost_growth", f.AIHypeCostGrowth, &b.AIHypeCostGrowth},
		{"base_loc_price", f.BaseLOCPrice, &b.BaseLOCPrice},
		{"ai_hype_rate", f.AIHypeRate, &b.AIHypeRate},
	}
	for _, o := range overrides {
		if o.src == nil {
			continue
		}
		v, err := decimal.NewFromString(*o.src)
		if err != nil {
			return fmt.Errorf("%s: %w", o.name, err)
		}
		*o.dst = v
	}
	return nil
}

// applyEnv overlays fields whose environment variable is set
func (b *Balance) applyEnv(getenv func(string) string) error {
	overrides := []struct {
		key string
		dst *decimal.Decimal
	}{
		{EnvInitialCoderCost, &b.InitialCoderCost},
		{EnvCoderCostGrowth, &b.CoderCostGrowth},
		{EnvInitialAIHypeCost, &b.InitialAIHypeCost},
		{EnvAIHypeCostGrowth, &b.AIHypeCostGrowth},
		{EnvBaseLOCPrice, &b.BaseLOCPrice},
		{EnvAIHypeRate, &b.AIHypeRate},
	}
	for _, o := range overrides {
		raw := getenv(o.key)
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", o.key, err)
		}
		*o.dst = v
	}
	return nil
}
