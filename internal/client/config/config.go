package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the heartrisk CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding users and assessments.
//   - ScorerEndpoint: URL the XML risk request is POSTed to.
//   - ScorerTimeout: upper bound for one scoring round-trip.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	DatabasePath   string        `env:"DB_PATH"`
	ScorerEndpoint string        `env:"SCORER_ENDPOINT"`
	ScorerTimeout  time.Duration `env:"SCORER_TIMEOUT"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "heartrisk.db"
	c.ScorerEndpoint = "http://127.0.0.1:5000/predict"
	c.ScorerTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then ".env" and the process environment, then flags. Later
// sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}

	environ, err := loadEnviron(dotEnvFile, os.Environ())
	if err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
