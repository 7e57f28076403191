package config

import (
	"fmt"

	"escrow-engine/internal/guard"
	"escrow-engine/internal/models"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from ESCROW_* environment variables
type Config struct {
	Port             int     `env:"ESCROW_PORT" envDefault:"8080"`
	Owner            string  `env:"ESCROW_OWNER,required"`
	FeeBasisPoints   int64   `env:"ESCROW_FEE_BASIS_POINTS" envDefault:"250"`
	CurrencyDecimals int32   `env:"ESCROW_CURRENCY_DECIMALS" envDefault:"18"`
	SeedFile         string  `env:"ESCROW_SEED_FILE"`
	LogLevel         string  `env:"ESCROW_LOG_LEVEL" envDefault:"info"`
	RateLimitRPS     float64 `env:"ESCROW_RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst   int     `env:"ESCROW_RATE_LIMIT_BURST" envDefault:"100"`
}

// Load parses the process environment and validates the result
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate applies the engine's own owner and fee rules plus basic range checks
func (c Config) Validate() error {
	if err := guard.All(
		guard.ValidCaller(models.Address(c.Owner)),
		guard.FeeWithinCap(c.FeeBasisPoints),
	); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.CurrencyDecimals < 0 || c.CurrencyDecimals > 30 {
		return fmt.Errorf("config: currency decimals %d out of range", c.CurrencyDecimals)
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
