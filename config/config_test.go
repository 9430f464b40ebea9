package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.InitialFunds)
	assert.Equal(t, 0.5, cfg.MinBet)
	assert.Equal(t, 5000, cfg.Rounds)
	assert.Len(t, cfg.Payouts, 3)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	yml := `
initial_funds: 200
min_bet: 1
rounds: 100
seed: 77
log:
  level: debug
payouts:
  - {tier: A, below: 0.5, multiplier: 2, reward_multiplier: 2}
  - {tier: B, below: 1, multiplier: 4, reward_multiplier: 9}
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))
	t.Setenv("DRIFTBET_ROUNDS", "42")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.InitialFunds)
	assert.Equal(t, 1.0, cfg.MinBet)
	assert.Equal(t, 42, cfg.Rounds)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Payouts, 2)
	assert.Equal(t, 9.0, cfg.Payouts[1].RewardMultiplier)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("DRIFTBET_MIN_BET", "abc")
	_, err = Load("")
	assert.ErrorContains(t, err, "DRIFTBET_MIN_BET")

	t.Setenv("DRIFTBET_MIN_BET", "-1")
	_, err = Load("")
	assert.ErrorContains(t, err, "min_bet")
}

func TestSource(t *testing.T) {
	cfg := Default()
	cfg.Seed = 5
	a, b := cfg.Source(), cfg.Source()
	assert.Equal(t, a.Float64(), b.Float64())

	cfg.Seed = 0
	v := cfg.Source().Float64()
	assert.True(t, v >= 0 && v < 1)
}
