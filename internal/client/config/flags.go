package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/heartrisk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite database path
//	-s string   scorer endpoint URL
//	-t int      scorer timeout (in seconds)
//	-l string   log level
//
// Only these flags are looked at (see flagx.FilterArgs), so -c and any
// flags owned by other components pass through.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.ScorerEndpoint, "s", cfg.ScorerEndpoint, "scorer endpoint URL")
	timeout := fs.Int("t", int(cfg.ScorerTimeout.Seconds()), "scorer timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.ScorerTimeout = time.Duration(*timeout) * time.Second
	return nil
}
