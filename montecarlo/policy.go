package montecarlo

// Edge-proportional stake policy: above EdgeThreshold the stake is a fraction of funds
// that grows linearly with the win probability.
const (
	EdgeThreshold = 0.4566
	StakeScale    = 1.73
)

// Proportion returns the funds fraction to stake at win probability p, and false when
// p is at or below the threshold.
func Proportion(p float64) (float64, bool) {
	if p > EdgeThreshold {
		return (p - EdgeThreshold) * StakeScale, true
	}
	return 0, false
}

// Stake returns the bet for the current round. When the proportional branch does not
// fire the bet is minBet and proportional is false.
func Stake(p, funds, minBet float64) (bet, proportion float64, proportional bool) {
	if prop, ok := Proportion(p); ok {
		return funds * prop, prop, true
	}
	return minBet, 0, false
}
