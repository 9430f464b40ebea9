package montecarlo

import (
	"github.com/Ashenafi-pixel/driftbet/env"
)

// DefaultMaxSteps caps an episode rollout when the caller passes no limit.
const DefaultMaxSteps = 10_000

// StopReason says why a rollout ended.
type StopReason string

const (
	StopDone     StopReason = "done"
	StopMaxSteps StopReason = "max_steps"
	StopNoBet    StopReason = "no_legal_bet"
)

// Episode summarizes one interactive rollout.
type Episode struct {
	Steps       int
	TotalReward float64
	FinalFunds  float64
	Reason      StopReason
}

// LegalBet clamps the policy stake into the range the environment accepts:
// [min bet, funds/2], since the bet is checked against funds with itself deducted.
// Returns false when that range is empty.
func LegalBet(stake, funds, minBet float64) (float64, bool) {
	hi := funds / 2
	if hi < minBet {
		return 0, false
	}
	if stake < minBet {
		return minBet, true
	}
	if stake > hi {
		return hi, true
	}
	return stake, true
}

// RunEpisode resets e and plays the stake policy until the episode is done,
// maxSteps is reached, or no legal bet remains.
func RunEpisode(e *env.Env, maxSteps int) (Episode, error) {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	obs, _ := e.Reset()
	funds := obs[0]
	ep := Episode{FinalFunds: funds, Reason: StopMaxSteps}
	for ep.Steps < maxSteps {
		stake, _, _ := Stake(e.Info().WinProbability, funds, e.MinBet())
		bet, ok := LegalBet(stake, funds, e.MinBet())
		if !ok {
			ep.Reason = StopNoBet
			return ep, nil
		}
		res, err := e.Step([]float64{bet})
		if err != nil {
			return ep, err
		}
		ep.Steps++
		ep.TotalReward += res.Reward
		funds = res.Observation[0]
		ep.FinalFunds = funds
		if res.Done {
			ep.Reason = StopDone
			return ep, nil
		}
	}
	return ep, nil
}
