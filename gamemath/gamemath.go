package gamemath

import (
	"fmt"
)

// Game constants shared by the interactive environment and the standalone actor.
const (
	InitialWinProbability = 0.43
	DriftMin              = 0.0035
	DriftMax              = 0.016
	FundsCapMultiple      = 10.0
)

// PayoutTier is one row of the win payout table. A tier matches a tier-selector
// draw w when w < Below. Multiplier is what gets credited to funds; RewardMultiplier
// is the shaping signal reported by the interactive environment.
type PayoutTier struct {
	Tier             string  `json:"tier" yaml:"tier"`
	Below            float64 `json:"below" yaml:"below"`
	Multiplier       float64 `json:"multiplier" yaml:"multiplier"`
	RewardMultiplier float64 `json:"reward_multiplier" yaml:"reward_multiplier"`
}

// PayoutTable is ordered by ascending Below.
type PayoutTable []PayoutTier

// DefaultPayoutTable returns the standard three-tier table.
func DefaultPayoutTable() PayoutTable {
	return PayoutTable{
		{Tier: "T1", Below: 0.87, Multiplier: 2, RewardMultiplier: 2},
		{Tier: "T2", Below: 0.97, Multiplier: 3, RewardMultiplier: 13},
		{Tier: "T3", Below: 1, Multiplier: 5, RewardMultiplier: 20},
	}
}

// PickTier selects the tier for selector draw w.
// Returns false only if the table is empty. A w at or past the last bound selects the last tier.
func (t PayoutTable) PickTier(w float64) (PayoutTier, bool) {
	if len(t) == 0 {
		return PayoutTier{}, false
	}
	for _, tier := range t {
		if w < tier.Below {
			return tier, true
		}
	}
	return t[len(t)-1], true
}

// Validate checks that bounds strictly increase and multipliers are positive.
func (t PayoutTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("payout table is empty")
	}
	prev := 0.0
	for i, tier := range t {
		if tier.Below <= prev {
			return fmt.Errorf("tier %q: bound %v must be greater than %v", tier.Tier, tier.Below, prev)
		}
		if tier.Multiplier <= 0 || tier.RewardMultiplier <= 0 {
			return fmt.Errorf("tier %q: multipliers must be positive", tier.Tier)
		}
		if i == len(t)-1 && tier.Below < 1 {
			return fmt.Errorf("tier %q: last bound %v must cover 1", tier.Tier, tier.Below)
		}
		prev = tier.Below
	}
	return nil
}

// ExpectedMultiplier is the mean funds multiplier of a win, assuming w is uniform in [0,1).
func (t PayoutTable) ExpectedMultiplier() float64 {
	var sum, prev float64
	for _, tier := range t {
		hi := tier.Below
		if hi > 1 {
			hi = 1
		}
		if hi > prev {
			sum += (hi - prev) * tier.Multiplier
			prev = hi
		}
	}
	return sum
}
