package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/heartrisk/internal/flagx"
	"github.com/dmitrijs2005/heartrisk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// may be strings like "10s" or integer nanoseconds.
type JsonConfig struct {
	DatabasePath   string         `json:"database_path"`
	ScorerEndpoint string         `json:"scorer_endpoint"`
	ScorerTimeout  timex.Duration `json:"scorer_timeout"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named
// by -c/-config. Without the flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ScorerEndpoint != "" {
		cfg.ScorerEndpoint = jc.ScorerEndpoint
	}
	if jc.ScorerTimeout.Duration != 0 {
		cfg.ScorerTimeout = jc.ScorerTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}
