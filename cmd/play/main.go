package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Ashenafi-pixel/driftbet/config"
	"github.com/Ashenafi-pixel/driftbet/env"
	"github.com/Ashenafi-pixel/driftbet/logger"
	"github.com/Ashenafi-pixel/driftbet/montecarlo"
)

type options struct {
	configPath string
	seed       uint64
	auto       bool
	maxSteps   int
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to YAML config (optional)")
	flag.Uint64Var(&opts.seed, "seed", 0, "RNG seed; 0 keeps the config value")
	flag.BoolVar(&opts.auto, "auto", false, "Play one episode with the stake policy instead of reading bets")
	flag.IntVar(&opts.maxSteps, "max-steps", 0, "Step limit for -auto (overrides config)")
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "play failed: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.maxSteps > 0 {
		cfg.MaxSteps = opts.maxSteps
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	e := env.New(
		env.WithInitialFunds(cfg.InitialFunds),
		env.WithMinBet(cfg.MinBet),
		env.WithSource(cfg.Source()),
		env.WithPayoutTable(cfg.Payouts),
		env.WithLogger(log),
	)

	if opts.auto {
		ep, err := montecarlo.RunEpisode(e, cfg.MaxSteps)
		if err != nil {
			return errors.Wrap(err, "episode")
		}
		fmt.Fprintf(out, "steps=%d reward=%v funds=%v stop=%s\n", ep.Steps, ep.TotalReward, ep.FinalFunds, ep.Reason)
		return nil
	}
	return interactive(e, in, out)
}

// interactive reads one command per line: a bet amount, "reset", or "quit".
func interactive(e *env.Env, in io.Reader, out io.Writer) error {
	obs, _ := e.Reset()
	fmt.Fprintf(out, "observation=%v\n", []float64(obs))
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "reset":
			obs, _ := e.Reset()
			fmt.Fprintf(out, "observation=%v\n", []float64(obs))
			continue
		}
		bet, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(out, "error: %q is not a bet amount\n", line)
			continue
		}
		space := e.ActionSpace()
		res, err := e.Step([]float64{bet})
		if err != nil {
			fmt.Fprintf(out, "error: %v (advisory range [%v, %v])\n", err, space.Low[0], space.High[0])
			continue
		}
		fmt.Fprintf(out, "observation=%v reward=%v done=%t truncated=%t funds=%v win_probability=%.4f\n",
			[]float64(res.Observation), res.Reward, res.Done, res.Truncated, res.Info.Funds, res.Info.WinProbability)
		e.Render()
	}
	return errors.Wrap(sc.Err(), "read input")
}
