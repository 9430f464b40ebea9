package montecarlo

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Ashenafi-pixel/driftbet/gamemath"
)

// TrialStats aggregates the final funds of repeated independent runs.
type TrialStats struct {
	Trials      int
	MeanFinal   float64
	MedianFinal float64
	MinFinal    float64
	MaxFinal    float64
	RuinRate    float64 // share of runs ending with funds <= 0
	DoubledRate float64 // share of runs ending with at least twice the start funds
	Finals      []float64
}

// SeededSources gives trial i the seed base+i, so a whole batch is reproducible from one seed.
func SeededSources(base uint64) func(trial int) gamemath.Source {
	return func(trial int) gamemath.Source {
		return gamemath.NewSeededSource(base + uint64(trial))
	}
}

// RunTrials runs trials sequential simulations, each with its own source from newSource.
func RunTrials(newSource func(trial int) gamemath.Source, trials, numRounds int, minBet, startFunds float64, opts ...Option) TrialStats {
	stats := TrialStats{Trials: trials}
	if trials <= 0 {
		return stats
	}
	stats.Finals = make([]float64, 0, trials)
	var ruined, doubled int
	var log logrus.FieldLogger
	for i := 0; i < trials; i++ {
		sim := New(newSource(i), opts...)
		log = sim.log
		res := sim.Run(numRounds, minBet, startFunds)
		stats.Finals = append(stats.Finals, res.FinalFunds)
		if res.FinalFunds <= 0 {
			ruined++
		}
		if res.FinalFunds >= 2*startFunds {
			doubled++
		}
	}

	sorted := append([]float64(nil), stats.Finals...)
	sort.Float64s(sorted)
	stats.MinFinal = sorted[0]
	stats.MaxFinal = sorted[len(sorted)-1]
	if n := len(sorted); n%2 == 1 {
		stats.MedianFinal = sorted[n/2]
	} else {
		stats.MedianFinal = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	stats.MeanFinal = mean(stats.Finals)
	stats.RuinRate = float64(ruined) / float64(trials)
	stats.DoubledRate = float64(doubled) / float64(trials)

	log.WithFields(logrus.Fields{
		"trials":     trials,
		"mean_final": stats.MeanFinal,
		"ruin_rate":  stats.RuinRate,
	}).Info("montecarlo: trials complete")
	return stats
}
