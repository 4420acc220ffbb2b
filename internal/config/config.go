package config

import (
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// Config is read from the environment (and an optional .env file).
// Command-line flags override individual fields.
type Config struct {
	SessionFile    string  `env:"ASTROCHAT_SESSION_FILE"`
	TranscriptPath string  `env:"ASTROCHAT_TRANSCRIPT"`
	RatingsDB      string  `env:"ASTROCHAT_RATINGS_DB"`
	LogFile        string  `env:"ASTROCHAT_LOG_FILE"`
	Debug          bool    `env:"ASTROCHAT_DEBUG" envDefault:"false"`
	Lang           string  `env:"ASTROCHAT_LANG" envDefault:"en"`
	NodeID         int64   `env:"ASTROCHAT_NODE_ID" envDefault:"1"`
	UnitsPerCell   float64 `env:"ASTROCHAT_UNITS_PER_CELL" envDefault:"8"`
	Timezone       string  `env:"ASTROCHAT_TIMEZONE"`
}

// Load reads the named dotenv files, or ./.env when present, and then the
// environment. Named files must exist.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil {
			return nil, errors.Wrap(err, "load env file")
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that env tags cannot express.
func (c *Config) Validate() error {
	if c.NodeID < 0 || c.NodeID > 1023 {
		return errors.Newf("ASTROCHAT_NODE_ID must be within 0-1023, got %d", c.NodeID)
	}
	if c.UnitsPerCell <= 0 {
		return errors.Newf("ASTROCHAT_UNITS_PER_CELL must be positive, got %v", c.UnitsPerCell)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the display time zone; empty means local time.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.Timezone)
	}
	return loc, nil
}
