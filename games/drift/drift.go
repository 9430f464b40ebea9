package drift

import (
	"github.com/Ashenafi-pixel/driftbet/gamemath"
)

// ResetPolicy decides what a win does to the win probability.
type ResetPolicy int

const (
	// ResetOnEpisode leaves the probability alone on a win; only a full episode reset restores it.
	// Used by the interactive environment.
	ResetOnEpisode ResetPolicy = iota
	// ResetOnWin restores InitialWinProbability after every win. Used by the standalone actor.
	ResetOnWin
)

func (p ResetPolicy) String() string {
	switch p {
	case ResetOnEpisode:
		return "reset_on_episode"
	case ResetOnWin:
		return "reset_on_win"
	default:
		return "unknown"
	}
}

// Resolution is the result of one resolved bet.
type Resolution struct {
	Bet            float64
	Won            bool
	Tier           string  // empty on loss
	Credited       float64 // funds credited: +k*bet on win, -bet on loss
	Reward         float64 // shaping signal: +reward_k*bet on win, -bet on loss
	Drift          float64 // probability increase on loss, 0 on win
	WinProbability float64 // probability after this round
}

// Rules bundles the payout table with a probability reset policy.
type Rules struct {
	Table gamemath.PayoutTable
	Reset ResetPolicy
}

// Resolve plays one round at win probability p.
// Draws r; on win (r <= p) draws the tier selector, on loss draws the drift.
func (ru Rules) Resolve(src gamemath.Source, bet, p float64) Resolution {
	table := ru.Table
	if len(table) == 0 {
		table = gamemath.DefaultPayoutTable()
	}
	res := Resolution{Bet: bet, WinProbability: p}
	if src.Float64() <= p {
		tier, _ := table.PickTier(src.Float64())
		res.Won = true
		res.Tier = tier.Tier
		res.Credited = tier.Multiplier * bet
		res.Reward = tier.RewardMultiplier * bet
		if ru.Reset == ResetOnWin {
			res.WinProbability = gamemath.InitialWinProbability
		}
		return res
	}
	res.Drift = gamemath.Uniform(src, gamemath.DriftMin, gamemath.DriftMax)
	res.Credited = -bet
	res.Reward = -bet
	res.WinProbability = p + res.Drift
	return res
}

// Terminal reports whether an episode with the given funds is over.
func Terminal(funds, initialFunds float64) bool {
	return funds <= 0 || funds >= gamemath.FundsCapMultiple*initialFunds
}
