package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Ashenafi-pixel/driftbet/config"
	"github.com/Ashenafi-pixel/driftbet/gamemath"
	"github.com/Ashenafi-pixel/driftbet/logger"
	"github.com/Ashenafi-pixel/driftbet/montecarlo"
	"github.com/Ashenafi-pixel/driftbet/report"
)

type options struct {
	configPath string
	rounds     int
	minBet     float64
	funds      float64
	seed       uint64
	trials     int
	ledger     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to YAML config (optional)")
	flag.IntVar(&opts.rounds, "rounds", -1, "Rounds per run (overrides config)")
	flag.Float64Var(&opts.minBet, "min-bet", 0, "Minimum bet (overrides config)")
	flag.Float64Var(&opts.funds, "funds", 0, "Starting funds (overrides config)")
	flag.Uint64Var(&opts.seed, "seed", 0, "RNG seed; 0 keeps the config value")
	flag.IntVar(&opts.trials, "trials", 0, "Independent runs to aggregate (overrides config)")
	flag.BoolVar(&opts.ledger, "ledger", false, "Append the run to <data_dir>/simulation_runs.json")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "simulate failed: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid options")
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}

	sim := montecarlo.New(cfg.Source(), montecarlo.WithLogger(log), montecarlo.WithPayoutTable(cfg.Payouts))
	res := sim.Run(cfg.Rounds, cfg.MinBet, cfg.InitialFunds)
	sum := montecarlo.Summarize(res, cfg.InitialFunds, cfg.Rounds)
	printSummary(out, sum)

	var stats *montecarlo.TrialStats
	if cfg.Trials > 1 {
		newSource := montecarlo.SeededSources(cfg.Seed)
		if cfg.Seed == 0 {
			newSource = func(int) gamemath.Source { return cfg.Source() }
		}
		s := montecarlo.RunTrials(newSource, cfg.Trials, cfg.Rounds, cfg.MinBet, cfg.InitialFunds,
			montecarlo.WithLogger(log), montecarlo.WithPayoutTable(cfg.Payouts))
		stats = &s
		printTrials(out, s)
	}

	if opts.ledger {
		rec := report.NewRecord(sum, cfg.Rounds, cfg.MinBet, cfg.Seed, stats)
		if err := report.NewLedger(cfg.DataDir).Append(rec); err != nil {
			return errors.Wrap(err, "append ledger")
		}
		log.WithFields(logrus.Fields{"run_id": rec.RunID, "data_dir": cfg.DataDir}).Info("simulate: run recorded")
	}
	return nil
}

func applyFlags(cfg *config.Config, opts options) {
	if opts.rounds >= 0 {
		cfg.Rounds = opts.rounds
	}
	if opts.minBet > 0 {
		cfg.MinBet = opts.minBet
	}
	if opts.funds > 0 {
		cfg.InitialFunds = opts.funds
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.trials > 0 {
		cfg.Trials = opts.trials
	}
}

func printSummary(out io.Writer, sum montecarlo.Summary) {
	fmt.Fprintf(out, "Starting funds: %v, post-simulation funds: %v\n", sum.StartFunds, sum.FinalFunds)
	fmt.Fprintf(out, "Average winning per round: %v\n", sum.MeanEarning)
	fmt.Fprintf(out, "Average betting proportion: %v (%d sized bets)\n", sum.MeanProportion, sum.ProportionSamples)
}

func printTrials(out io.Writer, s montecarlo.TrialStats) {
	fmt.Fprintf(out, "Trials: %d, mean final: %v, median final: %v, min: %v, max: %v\n",
		s.Trials, s.MeanFinal, s.MedianFinal, s.MinFinal, s.MaxFinal)
	fmt.Fprintf(out, "Ruin rate: %.4f, doubled rate: %.4f\n", s.RuinRate, s.DoubledRate)
}
