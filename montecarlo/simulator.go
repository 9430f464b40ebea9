package montecarlo

import (
	"github.com/sirupsen/logrus"

	"github.com/Ashenafi-pixel/driftbet/gamemath"
	"github.com/Ashenafi-pixel/driftbet/games/drift"
	"github.com/Ashenafi-pixel/driftbet/logger"
)

// Result is the outcome of one run.
type Result struct {
	FinalFunds  float64
	Proportions []float64 // only rounds where the proportional branch fired
	Rounds      int
	Wins        int
}

// Summary is the reporting view of a run.
type Summary struct {
	StartFunds        float64
	FinalFunds        float64
	Delta             float64
	MeanEarning       float64
	MeanProportion    float64
	ProportionSamples int
}

// Simulator runs the stake policy against a standalone actor.
type Simulator struct {
	src   gamemath.Source
	table gamemath.PayoutTable
	log   logrus.FieldLogger
}

type Option func(*Simulator)

func WithLogger(l logrus.FieldLogger) Option { return func(s *Simulator) { s.log = l } }

func WithPayoutTable(t gamemath.PayoutTable) Option { return func(s *Simulator) { s.table = t } }

func New(src gamemath.Source, opts ...Option) *Simulator {
	s := &Simulator{src: src}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = gamemath.NewCryptoSource()
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	return s
}

// Run plays numRounds rounds from startFunds with a fresh actor. There is no early stop:
// funds may reach zero or go negative and the run continues with whatever bet the policy yields.
func (s *Simulator) Run(numRounds int, minBet, startFunds float64) Result {
	actor := drift.NewActor(s.src, s.table)
	funds := startFunds
	proportions := []float64{}
	for i := 0; i < numRounds; i++ {
		bet, prop, proportional := Stake(actor.WinProbability(), funds, minBet)
		if proportional {
			proportions = append(proportions, prop)
		}
		funds += actor.Bet(bet)
	}
	res := Result{
		FinalFunds:  funds,
		Proportions: proportions,
		Rounds:      actor.Rounds(),
		Wins:        actor.Wins(),
	}
	s.log.WithFields(logrus.Fields{
		"rounds":      numRounds,
		"start_funds": startFunds,
		"final_funds": funds,
		"wins":        res.Wins,
		"sized_bets":  len(proportions),
	}).Info("montecarlo: run complete")
	return res
}

// Summarize computes the run's delta, mean per-round earning and mean stake proportion.
// MeanEarning is 0 for a zero-round run and MeanProportion is 0 when no proportion was recorded.
func Summarize(res Result, startFunds float64, numRounds int) Summary {
	sum := Summary{
		StartFunds:        startFunds,
		FinalFunds:        res.FinalFunds,
		Delta:             res.FinalFunds - startFunds,
		ProportionSamples: len(res.Proportions),
	}
	if numRounds > 0 {
		sum.MeanEarning = sum.Delta / float64(numRounds)
	}
	sum.MeanProportion = mean(res.Proportions)
	return sum
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var total float64
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}
