package drift

import (
	"github.com/Ashenafi-pixel/driftbet/gamemath"
)

// Actor is the standalone form of the game: it holds only the win probability,
// accepts any bet amount and resets the probability after every win.
type Actor struct {
	src    gamemath.Source
	rules  Rules
	p      float64
	rounds int
	wins   int
}

// NewActor creates an actor drawing from src. A nil table uses the default payouts.
func NewActor(src gamemath.Source, table gamemath.PayoutTable) *Actor {
	if src == nil {
		src = gamemath.NewCryptoSource()
	}
	return &Actor{
		src:   src,
		rules: Rules{Table: table, Reset: ResetOnWin},
		p:     gamemath.InitialWinProbability,
	}
}

// Bet resolves one bet and returns the funds-credited value: k*amount on a win, -amount on a loss.
// The amount is not validated.
func (a *Actor) Bet(amount float64) float64 {
	res := a.Play(amount)
	return res.Credited
}

// Play is Bet with the full resolution.
func (a *Actor) Play(amount float64) Resolution {
	res := a.rules.Resolve(a.src, amount, a.p)
	a.p = res.WinProbability
	a.rounds++
	if res.Won {
		a.wins++
	}
	return res
}

func (a *Actor) WinProbability() float64 { return a.p }

func (a *Actor) Rounds() int { return a.rounds }

func (a *Actor) Wins() int { return a.wins }
