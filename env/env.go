package env

import (
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Ashenafi-pixel/driftbet/gamemath"
	"github.com/Ashenafi-pixel/driftbet/games/drift"
	"github.com/Ashenafi-pixel/driftbet/logger"
)

const (
	DefaultInitialFunds = 1000.0
	DefaultMinBet       = 0.5
)

// ErrInvalidAction is returned when the action vector does not hold exactly one bet.
var ErrInvalidAction = errors.New("action must hold exactly one bet amount")

// Observation is the one-element state vector [funds].
type Observation []float64

// Info carries the session state after a step.
type Info struct {
	Funds          float64 `json:"funds"`
	WinProbability float64 `json:"win_probability"`
}

// StepResult is what Step reports for one round.
type StepResult struct {
	Observation Observation
	Reward      float64
	Done        bool
	Truncated   bool
	Info        Info
	Tier        string
}

// Box is a closed interval per dimension.
type Box struct {
	Low  []float64
	High []float64
}

// Contains reports whether x has the box's shape and lies inside it.
func (b Box) Contains(x []float64) bool {
	if len(x) != len(b.Low) || len(x) != len(b.High) {
		return false
	}
	for i, v := range x {
		if v < b.Low[i] || v > b.High[i] {
			return false
		}
	}
	return true
}

// Env is the interactive betting game. One bet per Step; the win probability
// drifts up on losses and only returns to its initial value on Reset.
type Env struct {
	initialFunds float64
	minBet       float64
	funds        float64
	p            float64
	rules        drift.Rules
	src          gamemath.Source
	log          logrus.FieldLogger
	session      string
	steps        int
}

type Option func(*Env)

func WithInitialFunds(v float64) Option { return func(e *Env) { e.initialFunds = v } }

func WithMinBet(v float64) Option { return func(e *Env) { e.minBet = v } }

func WithSource(src gamemath.Source) Option { return func(e *Env) { e.src = src } }

func WithLogger(l logrus.FieldLogger) Option { return func(e *Env) { e.log = l } }

func WithPayoutTable(t gamemath.PayoutTable) Option { return func(e *Env) { e.rules.Table = t } }

// New creates an environment already in its reset state.
func New(opts ...Option) *Env {
	e := &Env{
		initialFunds: DefaultInitialFunds,
		minBet:       DefaultMinBet,
		rules:        drift.Rules{Table: gamemath.DefaultPayoutTable(), Reset: drift.ResetOnEpisode},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = gamemath.NewCryptoSource()
	}
	if e.log == nil {
		e.log = logger.Discard()
	}
	e.funds = e.initialFunds
	e.p = gamemath.InitialWinProbability
	e.session = uuid.NewString()
	return e
}

// Reset restores initial funds and the initial win probability and starts a new session.
func (e *Env) Reset() (Observation, Info) {
	e.funds = e.initialFunds
	e.p = gamemath.InitialWinProbability
	e.session = uuid.NewString()
	e.steps = 0
	e.log.WithFields(logrus.Fields{"session": e.session, "funds": e.funds}).Debug("env: reset")
	return Observation{e.funds}, Info{}
}

// Step plays one round with action[0] as the bet.
// The bet is checked against funds with the bet already deducted; a rejected bet
// leaves the session untouched and returns a *drift.BetRangeError.
func (e *Env) Step(action []float64) (StepResult, error) {
	if len(action) != 1 {
		return StepResult{}, errors.Wrapf(ErrInvalidAction, "got %d values", len(action))
	}
	bet := action[0]
	remaining := e.funds - bet
	if err := drift.CheckBet(bet, e.minBet, remaining); err != nil {
		e.log.WithFields(logrus.Fields{"session": e.session, "bet": bet, "funds": e.funds}).Warn("env: bet rejected")
		return StepResult{}, err
	}

	res := e.rules.Resolve(e.src, bet, e.p)
	e.funds = remaining
	if res.Won {
		e.funds += res.Credited
	}
	e.p = res.WinProbability
	e.steps++

	done := drift.Terminal(e.funds, e.initialFunds)
	e.log.WithFields(logrus.Fields{
		"session": e.session,
		"round":   e.steps,
		"bet":     bet,
		"won":     res.Won,
		"tier":    res.Tier,
		"funds":   e.funds,
		"p":       e.p,
	}).Debug("env: step")

	return StepResult{
		Observation: Observation{e.funds},
		Reward:      res.Reward,
		Done:        done,
		Truncated:   false,
		Info:        e.Info(),
		Tier:        res.Tier,
	}, nil
}

// ActionSpace is the advisory bet range [min bet, current funds]. Step enforces its own check.
func (e *Env) ActionSpace() Box {
	return Box{Low: []float64{e.minBet}, High: []float64{e.funds}}
}

func (e *Env) ObservationSpace() Box {
	return Box{Low: []float64{0}, High: []float64{math.Inf(1)}}
}

// Render is a no-op.
func (e *Env) Render() {}

// Metadata lists supported render modes.
func (e *Env) Metadata() map[string][]string {
	return map[string][]string{"render.modes": {"human"}}
}

func (e *Env) Info() Info {
	return Info{Funds: e.funds, WinProbability: e.p}
}

func (e *Env) Funds() float64 { return e.funds }

func (e *Env) MinBet() float64 { return e.minBet }

func (e *Env) InitialFunds() float64 { return e.initialFunds }

func (e *Env) Steps() int { return e.steps }

func (e *Env) Session() string { return e.session }
