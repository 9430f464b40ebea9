package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Ashenafi-pixel/driftbet/montecarlo"
)

// Places is the rounding applied to money and rate values in records.
const Places = 6

// Record is one completed simulation run as written to the ledger.
type Record struct {
	RunID          string          `json:"runId"`
	RecordedAt     time.Time       `json:"recordedAt"`
	Seed           uint64          `json:"seed,omitempty"`
	Rounds         int             `json:"rounds"`
	MinBet         decimal.Decimal `json:"minBet"`
	StartFunds     decimal.Decimal `json:"startFunds"`
	FinalFunds     decimal.Decimal `json:"finalFunds"`
	Delta          decimal.Decimal `json:"delta"`
	MeanEarning    decimal.Decimal `json:"meanEarning"`
	MeanProportion decimal.Decimal `json:"meanProportion"`
	SizedBets      int             `json:"sizedBets"`
	Trials         *TrialsRecord   `json:"trials,omitempty"`
}

// TrialsRecord is present when the run was a batch of trials.
type TrialsRecord struct {
	Count       int             `json:"count"`
	MeanFinal   decimal.Decimal `json:"meanFinal"`
	MedianFinal decimal.Decimal `json:"medianFinal"`
	RuinRate    decimal.Decimal `json:"ruinRate"`
	DoubledRate decimal.Decimal `json:"doubledRate"`
}

func round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(Places)
}

// NewRecord builds a ledger record from a run summary. stats may be nil.
func NewRecord(sum montecarlo.Summary, rounds int, minBet float64, seed uint64, stats *montecarlo.TrialStats) *Record {
	r := &Record{
		RunID:          uuid.NewString(),
		RecordedAt:     time.Now().UTC(),
		Seed:           seed,
		Rounds:         rounds,
		MinBet:         round(minBet),
		StartFunds:     round(sum.StartFunds),
		FinalFunds:     round(sum.FinalFunds),
		Delta:          round(sum.Delta),
		MeanEarning:    round(sum.MeanEarning),
		MeanProportion: round(sum.MeanProportion),
		SizedBets:      sum.ProportionSamples,
	}
	if stats != nil && stats.Trials > 0 {
		r.Trials = &TrialsRecord{
			Count:       stats.Trials,
			MeanFinal:   round(stats.MeanFinal),
			MedianFinal: round(stats.MedianFinal),
			RuinRate:    round(stats.RuinRate),
			DoubledRate: round(stats.DoubledRate),
		}
	}
	return r
}

// Ledger appends run records to data/simulation_runs.json.
type Ledger struct {
	mu      sync.Mutex
	dataDir string
}

func NewLedger(dataDir string) *Ledger {
	if dataDir == "" {
		dataDir = "data"
	}
	return &Ledger{dataDir: dataDir}
}

func (l *Ledger) path() string {
	return filepath.Join(l.dataDir, "simulation_runs.json")
}

func (l *Ledger) readLocked() ([]*Record, error) {
	data, err := os.ReadFile(l.path())
	if os.IsNotExist(err) {
		return []*Record{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read ledger")
	}
	var list []*Record
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "decode ledger")
	}
	if list == nil {
		list = []*Record{}
	}
	return list, nil
}

// Append adds r to the ledger file.
func (l *Ledger) Append(r *Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	list, err := l.readLocked()
	if err != nil {
		return err
	}
	list = append(list, r)
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode ledger")
	}
	if err := os.MkdirAll(l.dataDir, 0755); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	return errors.Wrap(os.WriteFile(l.path(), data, 0644), "write ledger")
}

// List returns all records in append order.
func (l *Ledger) List() ([]*Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readLocked()
}

// Get returns the record with runID, or nil if absent.
func (l *Ledger) Get(runID string) (*Record, error) {
	list, err := l.List()
	if err != nil {
		return nil, err
	}
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].RunID == runID {
			return list[i], nil
		}
	}
	return nil, nil
}
