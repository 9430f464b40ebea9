package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Ashenafi-pixel/driftbet/gamemath"
	"github.com/Ashenafi-pixel/driftbet/logger"
)

type Config struct {
	InitialFunds float64              `yaml:"initial_funds"`
	MinBet       float64              `yaml:"min_bet"`
	Rounds       int                  `yaml:"rounds"`
	Trials       int                  `yaml:"trials"`
	Seed         uint64               `yaml:"seed"` // 0: unseeded (CSPRNG)
	MaxSteps     int                  `yaml:"max_steps"`
	DataDir      string               `yaml:"data_dir"` // run ledger location
	Payouts      gamemath.PayoutTable `yaml:"payouts"`
	Log          logger.Config        `yaml:"log"`
}

func Default() *Config {
	return &Config{
		InitialFunds: 1000,
		MinBet:       0.5,
		Rounds:       5000,
		Trials:       1,
		MaxSteps:     10_000,
		DataDir:      "data",
		Payouts:      gamemath.DefaultPayoutTable(),
		Log:          logger.Config{Level: "info", MaxSize: 10, MaxBackups: 3, MaxAge: 7},
	}
}

// Load builds the config: defaults, then the YAML file at path (if non-empty),
// then DRIFTBET_* environment variables. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DRIFTBET_INITIAL_FUNDS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "DRIFTBET_INITIAL_FUNDS")
		}
		c.InitialFunds = f
	}
	if v := os.Getenv("DRIFTBET_MIN_BET"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "DRIFTBET_MIN_BET")
		}
		c.MinBet = f
	}
	if v := os.Getenv("DRIFTBET_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "DRIFTBET_ROUNDS")
		}
		c.Rounds = n
	}
	if v := os.Getenv("DRIFTBET_TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "DRIFTBET_TRIALS")
		}
		c.Trials = n
	}
	if v := os.Getenv("DRIFTBET_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "DRIFTBET_SEED")
		}
		c.Seed = n
	}
	if v := os.Getenv("DRIFTBET_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("DRIFTBET_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DRIFTBET_LOG_FILE"); v != "" {
		c.Log.OutputFile = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.InitialFunds <= 0 {
		return errors.Errorf("initial_funds must be positive, got %v", c.InitialFunds)
	}
	if c.MinBet <= 0 {
		return errors.Errorf("min_bet must be positive, got %v", c.MinBet)
	}
	if c.Rounds < 0 {
		return errors.Errorf("rounds must not be negative, got %d", c.Rounds)
	}
	if c.Trials < 0 {
		return errors.Errorf("trials must not be negative, got %d", c.Trials)
	}
	if err := c.Payouts.Validate(); err != nil {
		return errors.Wrap(err, "payouts")
	}
	return nil
}

// Source returns a seeded source when Seed is set, otherwise a CSPRNG source.
func (c *Config) Source() gamemath.Source {
	if c.Seed != 0 {
		return gamemath.NewSeededSource(c.Seed)
	}
	return gamemath.NewCryptoSource()
}
